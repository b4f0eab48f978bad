package analytics

import (
	"strings"

	"brandintel/internal/dataset"
)

// FilterScope returns the mentions inside scope, preserving row order. The
// input is never mutated.
func FilterScope(mentions []dataset.MentionRecord, scope dataset.Scope) []dataset.MentionRecord {
	var out []dataset.MentionRecord
	for _, m := range mentions {
		if scope.Matches(m.ResponseRecord) {
			out = append(out, m)
		}
	}
	return out
}

// FilterCategory narrows base records to one category, preserving order.
func FilterCategory(records []dataset.ResponseRecord, category string) []dataset.ResponseRecord {
	var out []dataset.ResponseRecord
	for _, r := range records {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// SearchRecords keeps records whose prompt OR response contains term,
// case-insensitively. Search runs on base records, not mentions, since the
// text is duplicated per mention. An empty term matches everything.
func SearchRecords(records []dataset.ResponseRecord, term string) []dataset.ResponseRecord {
	if term == "" {
		return records
	}
	needle := strings.ToLower(term)
	var out []dataset.ResponseRecord
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Prompt), needle) ||
			strings.Contains(strings.ToLower(r.Response), needle) {
			out = append(out, r)
		}
	}
	return out
}
