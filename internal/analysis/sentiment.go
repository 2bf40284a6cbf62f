package analysis

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var lexiconYAML []byte

// negationFactor is applied to the polarity of a negated hit.
const negationFactor = -0.5

var defaultLexicon = mustParseLexicon(lexiconYAML)

// Entry is the lexicon score for one word.
type Entry struct {
	Polarity     float64 `yaml:"p"`
	Subjectivity float64 `yaml:"s"`
}

// Lexicon is a pattern-style sentiment model: scored words, intensifiers that
// scale the following hit, and negations that flip it.
type Lexicon struct {
	Words        map[string]Entry   `yaml:"words"`
	Intensifiers map[string]float64 `yaml:"intensifiers"`
	Negations    []string           `yaml:"negations"`

	negations map[string]struct{}
}

// Sentiment is the unrounded document score.
type Sentiment struct {
	Polarity     float64
	Subjectivity float64
	Assessments  int
}

// ParseLexicon decodes and validates a YAML lexicon.
func ParseLexicon(raw []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(raw, &lex); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	if len(lex.Words) == 0 {
		return nil, fmt.Errorf("parse lexicon: no scored words")
	}
	for word, e := range lex.Words {
		if e.Polarity < -1 || e.Polarity > 1 || e.Subjectivity < 0 || e.Subjectivity > 1 {
			return nil, fmt.Errorf("parse lexicon: %q out of range (%v, %v)", word, e.Polarity, e.Subjectivity)
		}
	}
	lex.negations = make(map[string]struct{}, len(lex.Negations))
	for _, n := range lex.Negations {
		lex.negations[strings.ToLower(n)] = struct{}{}
	}
	return &lex, nil
}

func mustParseLexicon(raw []byte) *Lexicon {
	lex, err := ParseLexicon(raw)
	if err != nil {
		panic(err)
	}
	return lex
}

// DefaultLexicon returns the embedded English lexicon.
func DefaultLexicon() *Lexicon {
	return defaultLexicon
}

// Score averages polarity and subjectivity over every lexicon hit in tokens.
// Text without hits scores 0, 0.
func (l *Lexicon) Score(tokens []string) Sentiment {
	lower := make([]string, len(tokens))
	for i, tok := range tokens {
		lower[i] = strings.ToLower(tok)
	}

	var result Sentiment
	for i, tok := range lower {
		entry, ok := l.Words[tok]
		if !ok {
			continue
		}

		p, s := entry.Polarity, entry.Subjectivity
		prev := i - 1
		if prev >= 0 {
			if k, ok := l.Intensifiers[lower[prev]]; ok {
				p, s = p*k, s*k
				prev--
			}
		}
		if l.negatedAt(lower, prev) {
			p *= negationFactor
		}

		result.Polarity += clamp(p, -1, 1)
		result.Subjectivity += clamp(s, 0, 1)
		result.Assessments++
	}

	if result.Assessments == 0 {
		return Sentiment{}
	}
	n := float64(result.Assessments)
	result.Polarity = clamp(result.Polarity/n, -1, 1)
	result.Subjectivity = clamp(result.Subjectivity/n, 0, 1)
	return result
}

// negatedAt looks back two tokens starting at idx.
func (l *Lexicon) negatedAt(tokens []string, idx int) bool {
	for j := idx; j >= 0 && j > idx-2; j-- {
		if l.isNegation(tokens[j]) {
			return true
		}
	}
	return false
}

func (l *Lexicon) isNegation(tok string) bool {
	if _, ok := l.negations[tok]; ok {
		return true
	}
	return strings.HasSuffix(tok, "n't") || strings.HasSuffix(tok, "n’t")
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
