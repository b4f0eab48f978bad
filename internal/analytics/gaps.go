package analytics

import (
	"sort"

	"brandintel/internal/dataset"
)

// SourceGap is a citation source where the focal brand trails the scope-wide
// distribution. Gap is the category proportion minus the brand proportion.
type SourceGap struct {
	Source        string  `json:"source"`
	CategoryShare float64 `json:"category_share"`
	BrandShare    float64 `json:"brand_share"`
	Gap           float64 `json:"gap"`
}

// SourceGaps normalizes the focal brand's citation-source distribution and the
// scope-wide one to proportions, then returns the three largest positive
// deficits. Sources the brand never cites count as a full gap. Sources where
// the brand matches or exceeds the category never appear; when no gap is
// positive the result is empty and there is nothing actionable.
func SourceGaps(mentions []dataset.MentionRecord, brand string) []SourceGap {
	catCounts := make(map[string]int)
	brandCounts := make(map[string]int)
	var order []string
	catTotal, brandTotal := 0, 0

	for _, m := range mentions {
		if m.Source == "" {
			continue
		}
		if _, ok := catCounts[m.Source]; !ok {
			order = append(order, m.Source)
		}
		catCounts[m.Source]++
		catTotal++
		if m.Brand == brand {
			brandCounts[m.Source]++
			brandTotal++
		}
	}
	if catTotal == 0 {
		return nil
	}

	var gaps []SourceGap
	for _, s := range order {
		catShare := float64(catCounts[s]) / float64(catTotal)
		brandShare := 0.0
		if brandTotal > 0 {
			brandShare = float64(brandCounts[s]) / float64(brandTotal)
		}
		gap := catShare - brandShare
		if gap <= 0 {
			continue
		}
		gaps = append(gaps, SourceGap{
			Source:        s,
			CategoryShare: catShare,
			BrandShare:    brandShare,
			Gap:           gap,
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool { return gaps[i].Gap > gaps[j].Gap })
	if len(gaps) > 3 {
		gaps = gaps[:3]
	}
	return gaps
}
