package analytics

import (
	"errors"

	"brandintel/internal/dataset"
	"brandintel/internal/extract"
)

// ErrNoMentions signals that extraction found zero brands across the entire
// dataset. The configured strategy and the data are mismatched and nothing
// downstream can be trusted.
var ErrNoMentions = errors.New("no brand mentions extracted from dataset")

// Expand runs the extractor over every response and emits one MentionRecord
// per (response, brand) pair, copying all parent fields. Responses yielding no
// brands are silently excluded; only a fully empty result is an error.
func Expand(records []dataset.ResponseRecord, ex extract.Extractor) ([]dataset.MentionRecord, error) {
	var mentions []dataset.MentionRecord
	for _, r := range records {
		for _, brand := range ex.Extract(r.Response) {
			mentions = append(mentions, dataset.MentionRecord{ResponseRecord: r, Brand: brand})
		}
	}
	if len(mentions) == 0 {
		return nil, ErrNoMentions
	}
	return mentions, nil
}
