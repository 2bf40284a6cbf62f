package analysis

import (
	"regexp"
	"strings"
)

var vowelRuns = regexp.MustCompile(`[aeiouy]+`)

// complexSyllableThreshold marks words with strictly more syllables as complex.
const complexSyllableThreshold = 2

// EstimateSyllables counts maximal vowel runs in the lower-cased word, with a
// floor of one. It is a heuristic, not a phonetic count: "fire" and "queue"
// come out wrong, and complexity thresholds are calibrated to exactly this.
func EstimateSyllables(word string) int {
	count := len(vowelRuns.FindAllStringIndex(strings.ToLower(word), -1))
	if count < 1 {
		return 1
	}
	return count
}

// IsComplex reports whether word has more than two estimated syllables.
func IsComplex(word string) bool {
	return EstimateSyllables(word) > complexSyllableThreshold
}
