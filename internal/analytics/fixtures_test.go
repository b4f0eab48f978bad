package analytics

import (
	"time"

	"brandintel/internal/dataset"
)

// mention builds one in-scope mention record for the fixture category.
func mention(brand, country, platform, criteria, source string, day int) dataset.MentionRecord {
	return dataset.MentionRecord{
		ResponseRecord: dataset.ResponseRecord{
			Date:     time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC),
			Category: "Laptops",
			Country:  country,
			Platform: platform,
			Criteria: criteria,
			Source:   source,
		},
		Brand: brand,
	}
}

// mentionsOf repeats a brand n times in the fixture scope.
func mentionsOf(brand string, n int) []dataset.MentionRecord {
	out := make([]dataset.MentionRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, mention(brand, "India", "ChatGPT", "price", "Reuters", 5))
	}
	return out
}
