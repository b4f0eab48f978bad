package analytics

import (
	"github.com/cdipaolo/sentiment"

	"brandintel/internal/dataset"
)

var model *sentiment.Models // do NOT restore here

// SetSentimentModel installs the restored model; main loads it once at startup.
func SetSentimentModel(m *sentiment.Models) {
	model = m
}

// scoreText maps the model's output onto a 1-100 scale.
func scoreText(text string) int {
	analysis := model.SentimentAnalysis(text, sentiment.English)
	score := int((float64(analysis.Score)/2.0)*99.0) + 1
	if score < 1 {
		score = 1
	} else if score > 100 {
		score = 100
	}
	return score
}

// BrandSentiment averages the sentiment of every response in scope that
// mentions the focal brand, on a 1-100 scale. Returns 0 when the model is not
// loaded or the brand has no mentions.
func BrandSentiment(mentions []dataset.MentionRecord, brand string) float64 {
	if model == nil {
		return 0
	}
	total, n := 0, 0
	for _, m := range mentions {
		if m.Brand != brand {
			continue
		}
		total += scoreText(m.Response)
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}
