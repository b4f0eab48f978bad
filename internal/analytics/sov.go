package analytics

import (
	"sort"
	"time"

	"brandintel/internal/dataset"
)

// BrandCount pairs a brand with its mention count inside a scope.
type BrandCount struct {
	Brand string `json:"brand"`
	Count int    `json:"count"`
}

// CountBrands tallies mentions per brand in a single pass, keeping
// first-encounter order so that later rank ties break deterministically.
func CountBrands(mentions []dataset.MentionRecord) []BrandCount {
	idx := make(map[string]int)
	var counts []BrandCount
	for _, m := range mentions {
		i, ok := idx[m.Brand]
		if !ok {
			i = len(counts)
			idx[m.Brand] = i
			counts = append(counts, BrandCount{Brand: m.Brand})
		}
		counts[i].Count++
	}
	return counts
}

// RankBrands orders counts descending by mentions. The sort is stable, so tied
// brands keep their first-encounter order.
func RankBrands(counts []BrandCount) []BrandCount {
	ranked := make([]BrandCount, len(counts))
	copy(ranked, counts)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	return ranked
}

func TotalMentions(mentions []dataset.MentionRecord) int {
	return len(mentions)
}

func BrandMentions(mentions []dataset.MentionRecord, brand string) int {
	n := 0
	for _, m := range mentions {
		if m.Brand == brand {
			n++
		}
	}
	return n
}

// ShareOfVoice is the percentage of mentions in scope attributable to brand.
// An empty scope yields 0; that is a normal boundary condition, not an error.
func ShareOfVoice(mentions []dataset.MentionRecord, brand string) float64 {
	total := len(mentions)
	if total == 0 {
		return 0
	}
	return float64(BrandMentions(mentions, brand)) / float64(total) * 100
}

// Rank returns the 1-based position of brand in the descending mention
// ranking, or 0 when the brand has no mentions in scope (not ranked).
func Rank(mentions []dataset.MentionRecord, brand string) int {
	for i, bc := range RankBrands(CountBrands(mentions)) {
		if bc.Brand == brand {
			return i + 1
		}
	}
	return 0
}

// TopCompetitor is the highest-counted brand other than the focal one, or ""
// when no other brand exists in scope.
func TopCompetitor(mentions []dataset.MentionRecord, brand string) string {
	for _, bc := range RankBrands(CountBrands(mentions)) {
		if bc.Brand != brand {
			return bc.Brand
		}
	}
	return ""
}

// CriterionShare is the focal brand's share of one criterion's mentions.
type CriterionShare struct {
	Criteria string  `json:"criteria"`
	Share    float64 `json:"share"`
}

// CriteriaShares groups the scope by criteria and computes the focal brand's
// share within each group. Criteria where the brand never appears score 0 and
// stay in the result so they can surface as weaknesses.
func CriteriaShares(mentions []dataset.MentionRecord, brand string) []CriterionShare {
	totals := make(map[string]int)
	brandCounts := make(map[string]int)
	var order []string
	for _, m := range mentions {
		if _, ok := totals[m.Criteria]; !ok {
			order = append(order, m.Criteria)
		}
		totals[m.Criteria]++
		if m.Brand == brand {
			brandCounts[m.Criteria]++
		}
	}

	shares := make([]CriterionShare, 0, len(order))
	for _, c := range order {
		share := 0.0
		if totals[c] > 0 {
			share = float64(brandCounts[c]) / float64(totals[c]) * 100
		}
		shares = append(shares, CriterionShare{Criteria: c, Share: share})
	}
	return shares
}

// StrengthsWeaknesses picks the 3 criteria with the highest focal share and
// the 3 with the lowest. Weaknesses come back lowest first.
func StrengthsWeaknesses(shares []CriterionShare) (strengths, weaknesses []CriterionShare) {
	sorted := make([]CriterionShare, len(shares))
	copy(sorted, shares)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Share > sorted[j].Share })

	n := 3
	if len(sorted) < n {
		n = len(sorted)
	}
	strengths = append(strengths, sorted[:n]...)
	for i := len(sorted) - 1; i >= len(sorted)-n; i-- {
		weaknesses = append(weaknesses, sorted[i])
	}
	return strengths, weaknesses
}

// GroupKey selects the secondary grouping dimension for time series and
// breakdown cells.
type GroupKey string

const (
	GroupNone     GroupKey = "none"
	GroupPlatform GroupKey = "platform"
	GroupCountry  GroupKey = "country"
)

// Valid reports whether g is one of the supported grouping keys.
func (g GroupKey) Valid() bool {
	return g == GroupNone || g == GroupPlatform || g == GroupCountry
}

func (g GroupKey) value(m dataset.MentionRecord) string {
	switch g {
	case GroupPlatform:
		return m.Platform
	case GroupCountry:
		return m.Country
	default:
		return ""
	}
}

// TimeSeriesPoint is the focal brand's share for one (date, group value) cell.
type TimeSeriesPoint struct {
	Date  time.Time `json:"date"`
	Group string    `json:"group,omitempty"`
	Share float64   `json:"share"`
}

// TimeSeries computes the focal brand's share of each (date, group value)
// cell's mentions, sorted by date then group value. A cell with zero total
// mentions never appears in the grouping, so no divide-by-zero row is emitted.
func TimeSeries(mentions []dataset.MentionRecord, brand string, group GroupKey) []TimeSeriesPoint {
	type key struct {
		date  time.Time
		group string
	}
	type cell struct{ total, hits int }

	cells := make(map[key]*cell)
	for _, m := range mentions {
		k := key{date: m.Date, group: group.value(m)}
		c := cells[k]
		if c == nil {
			c = &cell{}
			cells[k] = c
		}
		c.total++
		if m.Brand == brand {
			c.hits++
		}
	}

	points := make([]TimeSeriesPoint, 0, len(cells))
	for k, c := range cells {
		points = append(points, TimeSeriesPoint{
			Date:  k.date,
			Group: k.group,
			Share: float64(c.hits) / float64(c.total) * 100,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		if !points[i].Date.Equal(points[j].Date) {
			return points[i].Date.Before(points[j].Date)
		}
		return points[i].Group < points[j].Group
	})
	return points
}

// TopBrands returns the n highest-counted brands in scope. The focal brand is
// force-included when it falls outside the cut, so its curve is always
// present even when narrow.
func TopBrands(mentions []dataset.MentionRecord, brand string, n int) []string {
	ranked := RankBrands(CountBrands(mentions))
	var out []string
	for _, bc := range ranked {
		if len(out) == n {
			break
		}
		out = append(out, bc.Brand)
	}
	for _, b := range out {
		if b == brand {
			return out
		}
	}
	return append(out, brand)
}
