package sitegraph

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify canonicalizes arbitrary human text into a stable identifier token:
// lowercase, diacritics stripped via canonical decomposition, every maximal
// run of characters outside [a-z0-9] collapsed to a single hyphen, and
// leading/trailing hyphens trimmed. It never fails; empty or symbol-only
// input yields an empty string. Slugify is idempotent and independent of the
// process locale.
func Slugify(text string) string {
	s := stripDiacritics(strings.ToLower(strings.TrimSpace(text)))

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// stripDiacritics removes combining marks after NFD decomposition, so that
// e.g. "ação" folds to "acao". Transformers carry state, so a fresh chain is
// built per call; Slugify must be safe for concurrent use.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
