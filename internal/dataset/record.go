package dataset

import "time"

// ResponseRecord is one simulated AI interaction. The record set is loaded once
// per process and treated as read-only afterwards.
type ResponseRecord struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Category string    `json:"category"`
	Country  string    `json:"country"`
	Platform string    `json:"platform"`
	Criteria string    `json:"criteria"`
	Prompt   string    `json:"prompt"`
	Response string    `json:"response"`
	Source   string    `json:"source_citation"`
}

// MentionRecord is one (response, brand) pair produced by exploding a
// response's extracted brand set. All aggregations operate over these.
type MentionRecord struct {
	ResponseRecord
	Brand string `json:"brand"`
}

// AllValue is the sentinel that disables an optional scope dimension.
const AllValue = "All"

// Scope narrows the dataset to a market slice. Category is mandatory and
// exact-match; Country and Platform are ignored when empty or set to AllValue.
type Scope struct {
	Category string `json:"category"`
	Country  string `json:"country,omitempty"`
	Platform string `json:"platform,omitempty"`
}

// Matches reports whether a record falls inside the scope.
func (s Scope) Matches(r ResponseRecord) bool {
	if r.Category != s.Category {
		return false
	}
	if s.Country != "" && s.Country != AllValue && r.Country != s.Country {
		return false
	}
	if s.Platform != "" && s.Platform != AllValue && r.Platform != s.Platform {
		return false
	}
	return true
}
