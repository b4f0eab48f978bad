package analytics

import (
	"sort"

	"brandintel/internal/dataset"
)

// IndexCell is one cell of a two-dimensional breakdown, scored against its own
// equal-split baseline. Index 100 means exactly average visibility for the
// number of brands competing in the cell; above 100 is over-performance.
type IndexCell struct {
	Primary        string  `json:"primary"`
	Secondary      string  `json:"secondary"`
	TotalMentions  int     `json:"total_mentions"`
	BrandMentions  int     `json:"brand_mentions"`
	Share          float64 `json:"share"`
	DistinctBrands int     `json:"distinct_brands"`
	Baseline       float64 `json:"baseline"`
	Index          float64 `json:"index"`
}

// IndexMatrix breaks the scope down by two dimensions (e.g. country x
// platform) and computes each cell's focal share against that cell's implied
// equal-share baseline (100 / distinct brands). Normalizing per cell makes
// over/under-performance comparable regardless of how many brands compete
// there.
func IndexMatrix(mentions []dataset.MentionRecord, brand string, primary, secondary GroupKey) []IndexCell {
	type key struct{ p, s string }
	type agg struct {
		total, hits int
		brands      map[string]struct{}
	}

	cells := make(map[key]*agg)
	var order []key
	for _, m := range mentions {
		k := key{p: primary.value(m), s: secondary.value(m)}
		a := cells[k]
		if a == nil {
			a = &agg{brands: make(map[string]struct{})}
			cells[k] = a
			order = append(order, k)
		}
		a.total++
		a.brands[m.Brand] = struct{}{}
		if m.Brand == brand {
			a.hits++
		}
	}

	out := make([]IndexCell, 0, len(order))
	for _, k := range order {
		a := cells[k]
		cell := IndexCell{
			Primary:        k.p,
			Secondary:      k.s,
			TotalMentions:  a.total,
			BrandMentions:  a.hits,
			DistinctBrands: len(a.brands),
		}
		if a.total > 0 {
			cell.Share = float64(a.hits) / float64(a.total) * 100
		}
		divisor := len(a.brands)
		if divisor == 0 {
			// Empty cell: floor at the mention count (min 1) so the baseline
			// stays defined and the cell renders as a neutral zero.
			divisor = a.total
			if divisor < 1 {
				divisor = 1
			}
		}
		cell.Baseline = 100 / float64(divisor)
		if cell.Baseline > 0 {
			cell.Index = cell.Share / cell.Baseline * 100
		}
		out = append(out, cell)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Primary != out[j].Primary {
			return out[i].Primary < out[j].Primary
		}
		return out[i].Secondary < out[j].Secondary
	})
	return out
}

// GlobalIndex is the scope-wide ratio of the focal brand's share to the
// equal-split baseline across all distinct brands in scope, with its tier.
func GlobalIndex(mentions []dataset.MentionRecord, brand string) (float64, string) {
	counts := CountBrands(mentions)
	if len(counts) == 0 {
		return 0, VisibilityTier(0)
	}
	share := ShareOfVoice(mentions, brand)
	baseline := 100 / float64(len(counts))
	ratio := share / baseline
	return ratio, VisibilityTier(ratio)
}

// VisibilityTier buckets a share/baseline ratio into a display label.
func VisibilityTier(ratio float64) string {
	switch {
	case ratio < 0.5:
		return "Low"
	case ratio < 0.8:
		return "Moderate"
	case ratio < 1.2:
		return "Average"
	case ratio < 2.0:
		return "Good"
	default:
		return "Excellent"
	}
}
