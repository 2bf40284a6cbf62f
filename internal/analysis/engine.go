package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"WikiAnalyzer/internal/domain"
	"WikiAnalyzer/internal/ports"
)

const defaultWordsPerMinute = 200

// ErrInvalidText is returned for input that is not valid UTF-8.
var ErrInvalidText = errors.New("text is not valid utf-8")

// Engine computes text metrics. It holds only read-only configuration and is
// safe for concurrent use.
type Engine struct {
	wordsPerMinute int
	lexicon        *Lexicon
}

var _ ports.TextAnalyzer = (*Engine)(nil)

// NewEngine builds an engine; non-positive wordsPerMinute defaults to 200 and
// a nil lexicon to the embedded one.
func NewEngine(wordsPerMinute int, lexicon *Lexicon) *Engine {
	if wordsPerMinute <= 0 {
		wordsPerMinute = defaultWordsPerMinute
	}
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &Engine{wordsPerMinute: wordsPerMinute, lexicon: lexicon}
}

// counts are the raw, unrounded inputs to the metrics record.
type counts struct {
	words     int
	sentences int
	complex   int
	syllables int
	sentiment Sentiment
}

// Analyze tokenizes text and returns the full metrics record, or an error and
// no metrics at all.
func (e *Engine) Analyze(ctx context.Context, text string) (metrics domain.Metrics, err error) {
	defer func() {
		if r := recover(); r != nil {
			metrics = domain.Metrics{}
			err = fmt.Errorf("analyze text: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return domain.Metrics{}, fmt.Errorf("analyze text: %w", err)
	}
	if !utf8.ValidString(text) {
		return domain.Metrics{}, ErrInvalidText
	}

	tokens := Words(text)
	c := counts{
		words:     len(tokens),
		sentences: len(Sentences(text)),
	}
	for _, tok := range tokens {
		c.syllables += EstimateSyllables(tok)
		if IsComplex(tok) {
			c.complex++
		}
	}

	if err := ctx.Err(); err != nil {
		return domain.Metrics{}, fmt.Errorf("analyze text: %w", err)
	}
	c.sentiment = e.lexicon.Score(tokens)

	return e.build(c), nil
}

// build derives and rounds every field exactly once.
func (e *Engine) build(c counts) domain.Metrics {
	wordsPerSentence := ratio(float64(c.words), float64(c.sentences))
	syllablesPerWord := ratio(float64(c.syllables), float64(c.words))

	var ease, grade float64
	if c.words > 0 && c.sentences > 0 {
		ease = 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
		grade = 0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59
	}

	return domain.Metrics{
		WordCount:             c.words,
		SentenceCount:         c.sentences,
		AvgSentenceLength:     round(wordsPerSentence, 2),
		ComplexWordCount:      c.complex,
		ComplexWordPercentage: round(100*ratio(float64(c.complex), float64(c.words)), 2),
		Polarity:              round(c.sentiment.Polarity, 2),
		Subjectivity:          round(c.sentiment.Subjectivity, 2),
		ReadingTime:           round(float64(c.words)/float64(e.wordsPerMinute), 1),
		SyllableCount:         c.syllables,
		FleschReadingEase:     round(ease, 2),
		FleschKincaidGrade:    round(grade, 2),
	}
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	r := math.Round(v*scale) / scale
	if r == 0 {
		// drop negative zero
		return 0
	}
	return r
}
