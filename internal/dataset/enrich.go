package dataset

import "math/rand"

// AssignCitations fills the Source field for records that arrived without one,
// drawing from the category's configured source list. Records whose category
// has no sources configured are left untouched. Assignment is reproducible for
// a fixed rand seed.
func AssignCitations(records []ResponseRecord, sources map[string][]string, rng *rand.Rand) {
	for i := range records {
		if records[i].Source != "" {
			continue
		}
		list := sources[records[i].Category]
		if len(list) == 0 {
			continue
		}
		records[i].Source = list[rng.Intn(len(list))]
	}
}
