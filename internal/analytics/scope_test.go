package analytics

import (
	"testing"

	"brandintel/internal/dataset"
)

func scopedFixture() []dataset.MentionRecord {
	return []dataset.MentionRecord{
		mention("A", "India", "ChatGPT", "price", "", 5),
		mention("B", "UK", "Gemini", "price", "", 5),
		mention("C", "India", "Gemini", "quality", "", 6),
	}
}

func TestFilterScope(t *testing.T) {
	m := scopedFixture()

	tests := []struct {
		name  string
		scope dataset.Scope
		want  []string
	}{
		{
			name:  "category only",
			scope: dataset.Scope{Category: "Laptops"},
			want:  []string{"A", "B", "C"},
		},
		{
			name:  "country narrows",
			scope: dataset.Scope{Category: "Laptops", Country: "India"},
			want:  []string{"A", "C"},
		},
		{
			name:  "country and platform",
			scope: dataset.Scope{Category: "Laptops", Country: "India", Platform: "Gemini"},
			want:  []string{"C"},
		},
		{
			name:  "All sentinel disables a dimension",
			scope: dataset.Scope{Category: "Laptops", Country: dataset.AllValue, Platform: dataset.AllValue},
			want:  []string{"A", "B", "C"},
		},
		{
			name:  "unknown category is empty, not an error",
			scope: dataset.Scope{Category: "Phones"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterScope(m, tt.scope)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d rows, want %d", len(got), len(tt.want))
			}
			for i, brand := range tt.want {
				if got[i].Brand != brand {
					t.Errorf("row %d = %q, want %q (order must be preserved)", i, got[i].Brand, brand)
				}
			}
		})
	}
}

func TestFilterScope_DoesNotMutateInput(t *testing.T) {
	m := scopedFixture()
	FilterScope(m, dataset.Scope{Category: "Laptops", Country: "India"})

	if len(m) != 3 || m[0].Brand != "A" || m[1].Brand != "B" || m[2].Brand != "C" {
		t.Errorf("input slice was mutated: %+v", m)
	}
}

func TestSearchRecords(t *testing.T) {
	records := []dataset.ResponseRecord{
		{ID: "r1", Prompt: "best shampoo for dandruff", Response: "Try **Acme**."},
		{ID: "r2", Prompt: "cheap laptops", Response: "The Sony lineup is solid."},
		{ID: "r3", Prompt: "travel tips", Response: "Pack light."},
	}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "matches prompt", term: "dandruff", want: []string{"r1"}},
		{name: "matches response", term: "sony", want: []string{"r2"}},
		{name: "case insensitive", term: "DANDRUFF", want: []string{"r1"}},
		{name: "either field matches", term: "t", want: []string{"r1", "r2", "r3"}},
		{name: "empty term matches all", term: "", want: []string{"r1", "r2", "r3"}},
		{name: "no match", term: "zzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchRecords(records, tt.term)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d rows, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("row %d = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}
