package query

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	suffixRe = regexp.MustCompile(`(?i)\b(jr|sr|ii|iii|iv|v)\b\.?`)
	punctRe  = regexp.MustCompile(`[^A-Za-z0-9\s-]`)
	spacesRe = regexp.MustCompile(`\s+`)

	// NFD + strip combining marks folds accented letters to plain ASCII
	// ("José" -> "Jose"). Characters with no ASCII equivalent are removed
	// by punctRe afterwards.
	asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// SanitizeName normalizes a player name for case-insensitive partial
// matching: accents folded to ASCII, generational suffixes (Jr, Sr, II-V)
// stripped as whole words, punctuation removed, whitespace collapsed,
// lowercased. Idempotent.
func SanitizeName(name string) string {
	s, _, err := transform.String(asciiFold, name)
	if err != nil {
		s = name
	}
	s = suffixRe.ReplaceAllString(s, "")
	s = punctRe.ReplaceAllString(s, "")
	s = spacesRe.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}
