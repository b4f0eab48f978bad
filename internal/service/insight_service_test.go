package service

import (
	"testing"
	"time"

	"brandintel/internal/analytics"
	"brandintel/internal/dataset"
)

func fixtureService() *InsightService {
	day := func(d int) time.Time { return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC) }
	rec := func(id, category, country, platform, prompt, response string, d int) dataset.ResponseRecord {
		return dataset.ResponseRecord{
			ID: id, Date: day(d), Category: category, Country: country,
			Platform: platform, Criteria: "price", Prompt: prompt, Response: response,
		}
	}

	records := []dataset.ResponseRecord{
		rec("r1", "Laptops", "India", "ChatGPT", "best laptop", "Try **Acme**.", 5),
		rec("r2", "Laptops", "India", "ChatGPT", "cheap laptop", "**Acme** and **Globex**.", 5),
		rec("r3", "Laptops", "UK", "Gemini", "gaming laptop", "**Globex** only.", 6),
		rec("r4", "Phones", "India", "ChatGPT", "best phone", "**Initech**.", 5),
	}

	mk := func(r dataset.ResponseRecord, brand string) dataset.MentionRecord {
		return dataset.MentionRecord{ResponseRecord: r, Brand: brand}
	}
	mentions := []dataset.MentionRecord{
		mk(records[0], "Acme"),
		mk(records[1], "Acme"),
		mk(records[1], "Globex"),
		mk(records[2], "Globex"),
		mk(records[3], "Initech"),
	}
	return NewInsightService(records, mentions)
}

func TestCategories(t *testing.T) {
	svc := fixtureService()
	got := svc.Categories()
	want := []string{"Laptops", "Phones"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestOverview(t *testing.T) {
	svc := fixtureService()

	ov := svc.Overview("Laptops")
	if ov.TotalInteractions != 3 {
		t.Errorf("TotalInteractions = %d, want 3", ov.TotalInteractions)
	}
	if ov.UniqueBrands != 2 {
		t.Errorf("UniqueBrands = %d, want 2", ov.UniqueBrands)
	}
	// Acme and Globex are tied at 2; first encounter wins
	if ov.TopBrand != "Acme" {
		t.Errorf("TopBrand = %q, want Acme", ov.TopBrand)
	}
	if ov.ActiveCountries != 2 {
		t.Errorf("ActiveCountries = %d, want 2", ov.ActiveCountries)
	}
}

func TestOverview_EmptyCategory(t *testing.T) {
	svc := fixtureService()
	ov := svc.Overview("Tablets")
	if ov.TotalInteractions != 0 || ov.UniqueBrands != 0 {
		t.Errorf("empty category overview = %+v", ov)
	}
	if ov.TopBrand != "N/A" {
		t.Errorf("TopBrand = %q, want N/A fallback", ov.TopBrand)
	}
}

func TestDailyVolume(t *testing.T) {
	svc := fixtureService()
	points := svc.DailyVolume("Laptops")
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].Count != 2 || points[1].Count != 1 {
		t.Errorf("volumes = %d, %d, want 2, 1", points[0].Count, points[1].Count)
	}
	if !points[0].Date.Before(points[1].Date) {
		t.Error("points not sorted by date")
	}
}

func TestPlatformActivity(t *testing.T) {
	svc := fixtureService()
	got := svc.PlatformActivity("Laptops")
	if len(got) != 2 {
		t.Fatalf("got %d platforms, want 2", len(got))
	}
	if got[0].Platform != "ChatGPT" || got[0].Count != 2 {
		t.Errorf("busiest platform = %+v, want ChatGPT with 2", got[0])
	}
}

func TestLeaderboard(t *testing.T) {
	svc := fixtureService()
	got := svc.Leaderboard("Laptops", 1)
	if len(got) != 1 || got[0].Brand != "Acme" || got[0].Count != 2 {
		t.Errorf("Leaderboard() = %+v, want [Acme 2]", got)
	}
}

func TestShareOfVoiceReport(t *testing.T) {
	svc := fixtureService()

	report := svc.ShareOfVoice(dataset.Scope{Category: "Laptops"}, "Acme")
	if report.Empty {
		t.Fatal("report marked empty with data in scope")
	}
	if report.TotalMentions != 4 || report.BrandMentions != 2 {
		t.Errorf("mentions = %d/%d, want 4/2", report.TotalMentions, report.BrandMentions)
	}
	if report.Share != 50 {
		t.Errorf("Share = %v, want 50", report.Share)
	}
	if report.Rank != 1 {
		t.Errorf("Rank = %d, want 1", report.Rank)
	}
	if report.TopCompetitor != "Globex" {
		t.Errorf("TopCompetitor = %q, want Globex", report.TopCompetitor)
	}
	if report.VisibilityTier == "" {
		t.Error("VisibilityTier not set")
	}
}

func TestShareOfVoiceReport_EmptyScope(t *testing.T) {
	svc := fixtureService()

	report := svc.ShareOfVoice(dataset.Scope{Category: "Tablets"}, "Acme")
	if !report.Empty {
		t.Error("report for empty scope not marked Empty")
	}
	if report.Share != 0 || report.Rank != 0 {
		t.Errorf("empty scope share/rank = %v/%d, want 0/0", report.Share, report.Rank)
	}
	if report.TopCompetitor != "none" {
		t.Errorf("TopCompetitor = %q, want none", report.TopCompetitor)
	}
	if report.VisibilityTier != "Low" {
		t.Errorf("VisibilityTier = %q, want Low", report.VisibilityTier)
	}
}

func TestTimeSeries_FocalAlwaysPresent(t *testing.T) {
	svc := fixtureService()

	series := svc.TimeSeries(dataset.Scope{Category: "Laptops"}, "Globex", analytics.GroupNone, 1)
	var brands []string
	for _, s := range series {
		brands = append(brands, s.Brand)
	}
	// top-1 is Acme; Globex must still be included as the focal brand
	if len(brands) != 2 || brands[0] != "Acme" || brands[1] != "Globex" {
		t.Errorf("series brands = %v, want [Acme Globex]", brands)
	}
}

func TestCompare(t *testing.T) {
	svc := fixtureService()

	a, b := svc.Compare("Laptops",
		CompareSide{Country: "India"},
		CompareSide{Country: "UK"})

	if len(a.Brands) != 2 || a.Brands[0].Brand != "Acme" {
		t.Errorf("side A = %+v, want Acme leading", a.Brands)
	}
	if len(b.Brands) != 1 || b.Brands[0].Brand != "Globex" {
		t.Errorf("side B = %+v, want only Globex", b.Brands)
	}
}

func TestCompare_EmptySide(t *testing.T) {
	svc := fixtureService()
	_, b := svc.Compare("Laptops",
		CompareSide{Country: "India"},
		CompareSide{Country: "Brazil"})
	if len(b.Brands) != 0 {
		t.Errorf("empty side returned brands: %+v", b.Brands)
	}
}

func TestRecordsSearch(t *testing.T) {
	svc := fixtureService()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "all records in category", search: "", want: []string{"r1", "r2", "r3"}},
		{name: "prompt match", search: "gaming", want: []string{"r3"}},
		{name: "response match case-insensitive", search: "globex", want: []string{"r2", "r3"}},
		{name: "no match", search: "zzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Records("Laptops", tt.search)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d records, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("record %d = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}
