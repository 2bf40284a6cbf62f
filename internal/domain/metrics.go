package domain

// Metrics is the immutable text-metrics record for one article.
// Values are already rounded by the engine that builds it.
type Metrics struct {
	WordCount             int     `json:"word_count"`
	SentenceCount         int     `json:"sentence_count"`
	AvgSentenceLength     float64 `json:"avg_sentence_length"`
	ComplexWordCount      int     `json:"complex_word_count"`
	ComplexWordPercentage float64 `json:"complex_word_percentage"`
	Polarity              float64 `json:"polarity"`
	Subjectivity          float64 `json:"subjectivity"`
	ReadingTime           float64 `json:"reading_time"`
	SyllableCount         int     `json:"syllable_count"`
	FleschReadingEase     float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade    float64 `json:"flesch_kincaid_grade"`
}

// Field is one named metric value.
type Field struct {
	Name  string
	Value any
}

// Fields returns the metrics as an ordered name/value list. The order matches
// the JSON encoding so serializers can rely on either.
func (m Metrics) Fields() []Field {
	return []Field{
		{Name: "word_count", Value: m.WordCount},
		{Name: "sentence_count", Value: m.SentenceCount},
		{Name: "avg_sentence_length", Value: m.AvgSentenceLength},
		{Name: "complex_word_count", Value: m.ComplexWordCount},
		{Name: "complex_word_percentage", Value: m.ComplexWordPercentage},
		{Name: "polarity", Value: m.Polarity},
		{Name: "subjectivity", Value: m.Subjectivity},
		{Name: "reading_time", Value: m.ReadingTime},
		{Name: "syllable_count", Value: m.SyllableCount},
		{Name: "flesch_reading_ease", Value: m.FleschReadingEase},
		{Name: "flesch_kincaid_grade", Value: m.FleschKincaidGrade},
	}
}

// Sentiment labels derived from polarity.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// SentimentLabel buckets polarity with a ±0.1 neutral band.
func (m Metrics) SentimentLabel() string {
	switch {
	case m.Polarity > 0.1:
		return SentimentPositive
	case m.Polarity < -0.1:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// ReadingEaseLabel maps the Flesch reading ease score to its conventional band.
func (m Metrics) ReadingEaseLabel() string {
	if m.WordCount == 0 || m.SentenceCount == 0 {
		return "n/a"
	}
	switch s := m.FleschReadingEase; {
	case s >= 90:
		return "very easy"
	case s >= 80:
		return "easy"
	case s >= 70:
		return "fairly easy"
	case s >= 60:
		return "standard"
	case s >= 50:
		return "fairly difficult"
	case s >= 30:
		return "difficult"
	default:
		return "very confusing"
	}
}
