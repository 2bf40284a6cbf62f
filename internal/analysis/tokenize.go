package analysis

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"
)

// Words splits text on Unicode word boundaries and keeps tokens carrying at
// least one letter or digit. Contractions ("don't") stay a single token;
// hyphenated compounds split at the hyphen.
func Words(text string) []string {
	var out []string
	tokens := words.FromString(text)
	for tokens.Next() {
		if tok := tokens.Value(); hasAlnum(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// Sentences splits text on Unicode sentence boundaries, dropping segments
// without any letter or digit.
func Sentences(text string) []string {
	var out []string
	segments := sentences.FromString(text)
	for segments.Next() {
		if s := strings.TrimSpace(segments.Value()); hasAlnum(s) {
			out = append(out, s)
		}
	}
	return out
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
