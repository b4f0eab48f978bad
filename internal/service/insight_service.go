package service

import (
	"sort"
	"time"

	"brandintel/internal/analytics"
	"brandintel/internal/dataset"
)

// InsightService owns the loaded dataset and its expanded mention table. Both
// are read-only after construction, so every query method is a pure
// recomputation over shared tables and safe for concurrent callers.
type InsightService struct {
	records  []dataset.ResponseRecord
	mentions []dataset.MentionRecord
}

func NewInsightService(records []dataset.ResponseRecord, mentions []dataset.MentionRecord) *InsightService {
	return &InsightService{records: records, mentions: mentions}
}

// Mentions exposes the expanded mention table to the presentation layer.
func (s *InsightService) Mentions() []dataset.MentionRecord {
	return s.mentions
}

// Categories returns the distinct categories present in the dataset, sorted.
func (s *InsightService) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range s.records {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	sort.Strings(out)
	return out
}

// Overview bundles the top-line KPIs for one category.
type Overview struct {
	Category          string `json:"category"`
	TotalInteractions int    `json:"total_interactions"`
	UniqueBrands      int    `json:"unique_brands"`
	TopBrand          string `json:"top_brand"`
	ActiveCountries   int    `json:"active_countries"`
}

func (s *InsightService) Overview(category string) Overview {
	recs := analytics.FilterCategory(s.records, category)
	scoped := analytics.FilterScope(s.mentions, dataset.Scope{Category: category})

	countries := make(map[string]struct{})
	for _, r := range recs {
		countries[r.Country] = struct{}{}
	}

	overview := Overview{
		Category:          category,
		TotalInteractions: len(recs),
		UniqueBrands:      len(analytics.CountBrands(scoped)),
		TopBrand:          "N/A",
		ActiveCountries:   len(countries),
	}
	if ranked := analytics.RankBrands(analytics.CountBrands(scoped)); len(ranked) > 0 {
		overview.TopBrand = ranked[0].Brand
	}
	return overview
}

// VolumePoint is the number of interactions on one date.
type VolumePoint struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// DailyVolume counts interactions per date for a category, sorted by date.
func (s *InsightService) DailyVolume(category string) []VolumePoint {
	counts := make(map[time.Time]int)
	for _, r := range analytics.FilterCategory(s.records, category) {
		counts[r.Date]++
	}
	points := make([]VolumePoint, 0, len(counts))
	for d, n := range counts {
		points = append(points, VolumePoint{Date: d, Count: n})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

// ActivityCount is the number of interactions on one AI platform.
type ActivityCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

// PlatformActivity counts interactions per platform for a category, busiest
// platform first.
func (s *InsightService) PlatformActivity(category string) []ActivityCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range analytics.FilterCategory(s.records, category) {
		if _, ok := counts[r.Platform]; !ok {
			order = append(order, r.Platform)
		}
		counts[r.Platform]++
	}
	out := make([]ActivityCount, 0, len(order))
	for _, p := range order {
		out = append(out, ActivityCount{Platform: p, Count: counts[p]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Leaderboard returns the n most-mentioned brands in a category.
func (s *InsightService) Leaderboard(category string, n int) []analytics.BrandCount {
	scoped := analytics.FilterScope(s.mentions, dataset.Scope{Category: category})
	ranked := analytics.RankBrands(analytics.CountBrands(scoped))
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// SOVReport bundles every share-of-voice metric for one focal brand in scope.
// An empty scope comes back with Empty set and zero values throughout; the
// presentation layer decides how to render "no data".
type SOVReport struct {
	Scope          dataset.Scope              `json:"scope"`
	Brand          string                     `json:"brand"`
	TotalMentions  int                        `json:"total_mentions"`
	BrandMentions  int                        `json:"brand_mentions"`
	Share          float64                    `json:"share"`
	Rank           int                        `json:"rank"` // 0 = not ranked
	TopCompetitor  string                     `json:"top_competitor"`
	Strengths      []analytics.CriterionShare `json:"strengths"`
	Weaknesses     []analytics.CriterionShare `json:"weaknesses"`
	GlobalIndex    float64                    `json:"global_index"`
	VisibilityTier string                     `json:"visibility_tier"`
	Empty          bool                       `json:"empty"`
}

func (s *InsightService) ShareOfVoice(scope dataset.Scope, brand string) SOVReport {
	scoped := analytics.FilterScope(s.mentions, scope)

	report := SOVReport{
		Scope:         scope,
		Brand:         brand,
		TotalMentions: analytics.TotalMentions(scoped),
		TopCompetitor: "none",
	}
	if report.TotalMentions == 0 {
		report.Empty = true
		report.VisibilityTier = analytics.VisibilityTier(0)
		return report
	}

	report.BrandMentions = analytics.BrandMentions(scoped, brand)
	report.Share = analytics.ShareOfVoice(scoped, brand)
	report.Rank = analytics.Rank(scoped, brand)
	if tc := analytics.TopCompetitor(scoped, brand); tc != "" {
		report.TopCompetitor = tc
	}
	report.Strengths, report.Weaknesses = analytics.StrengthsWeaknesses(analytics.CriteriaShares(scoped, brand))
	report.GlobalIndex, report.VisibilityTier = analytics.GlobalIndex(scoped, brand)
	return report
}

// BrandSeries is one brand's share curve.
type BrandSeries struct {
	Brand  string                      `json:"brand"`
	Points []analytics.TimeSeriesPoint `json:"points"`
}

// TimeSeries returns share curves for the topN brands in scope. The focal
// brand's curve is always included, even when it ranks outside the cut.
func (s *InsightService) TimeSeries(scope dataset.Scope, brand string, group analytics.GroupKey, topN int) []BrandSeries {
	scoped := analytics.FilterScope(s.mentions, scope)
	if len(scoped) == 0 {
		return nil
	}
	var series []BrandSeries
	for _, b := range analytics.TopBrands(scoped, brand, topN) {
		series = append(series, BrandSeries{Brand: b, Points: analytics.TimeSeries(scoped, b, group)})
	}
	return series
}

// IndexMatrix scores every country x platform cell in scope against its own
// equal-share baseline.
func (s *InsightService) IndexMatrix(scope dataset.Scope, brand string) []analytics.IndexCell {
	scoped := analytics.FilterScope(s.mentions, scope)
	return analytics.IndexMatrix(scoped, brand, analytics.GroupCountry, analytics.GroupPlatform)
}

// SourceGaps reports the focal brand's most under-represented citation sources.
func (s *InsightService) SourceGaps(scope dataset.Scope, brand string) []analytics.SourceGap {
	scoped := analytics.FilterScope(s.mentions, scope)
	return analytics.SourceGaps(scoped, brand)
}

// BrandSentiment averages the sentiment of the responses mentioning the brand.
func (s *InsightService) BrandSentiment(scope dataset.Scope, brand string) float64 {
	scoped := analytics.FilterScope(s.mentions, scope)
	return analytics.BrandSentiment(scoped, brand)
}

// CompareSide selects one side of a head-to-head comparison.
type CompareSide struct {
	Country  string `json:"country" validate:"required"`
	Platform string `json:"platform"`
}

// CompareResult is one side's top-brand table.
type CompareResult struct {
	Side   CompareSide            `json:"side"`
	Brands []analytics.BrandCount `json:"brands"`
}

// Compare runs the same category through two market scopes and returns each
// side's top-10 brand table. A side with no data yields an empty table.
func (s *InsightService) Compare(category string, a, b CompareSide) (CompareResult, CompareResult) {
	return s.compareSide(category, a), s.compareSide(category, b)
}

func (s *InsightService) compareSide(category string, side CompareSide) CompareResult {
	scope := dataset.Scope{Category: category, Country: side.Country, Platform: side.Platform}
	scoped := analytics.FilterScope(s.mentions, scope)
	ranked := analytics.RankBrands(analytics.CountBrands(scoped))
	if len(ranked) > 10 {
		ranked = ranked[:10]
	}
	return CompareResult{Side: side, Brands: ranked}
}

// Records returns base records in a category, optionally narrowed by a
// case-insensitive search across prompt and response text.
func (s *InsightService) Records(category, search string) []dataset.ResponseRecord {
	return analytics.SearchRecords(analytics.FilterCategory(s.records, category), search)
}
