package extract

import (
	"reflect"
	"testing"
)

func TestMarkupExtractor_Extract(t *testing.T) {
	ex := NewMarkupExtractor()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "two brands",
			text: "Try **Acme** or **Globex**.",
			want: []string{"Acme", "Globex"},
		},
		{
			name: "repeated brand counts once",
			text: "**Acme** is great. Many people love **Acme**.",
			want: []string{"Acme"},
		},
		{
			name: "no markup",
			text: "Nothing is emphasized here.",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "markup is taken verbatim without validation",
			text: "We compared **the top 3 options** carefully.",
			want: []string{"the top 3 options"},
		},
		{
			name: "case sensitive",
			text: "**acme** and **Acme** are distinct identities",
			want: []string{"acme", "Acme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ex.Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLexiconExtractor_Extract(t *testing.T) {
	ex := NewLexiconExtractor([]string{"Acme", "Globex"})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "both brands in lexicon order",
			text: "I recommend Acme over Globex any day",
			want: []string{"Acme", "Globex"},
		},
		{
			name: "case insensitive",
			text: "i recommend ACME over globex any day",
			want: []string{"Acme", "Globex"},
		},
		{
			name: "lexicon order wins over text order",
			text: "Globex beats Acme",
			want: []string{"Acme", "Globex"},
		},
		{
			name: "no brand present",
			text: "none of the known names appear",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ex.Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLexiconExtractor_MetacharacterBrands(t *testing.T) {
	ex := NewLexiconExtractor([]string{"P&G", "L'Oreal", "C++ Labs"})

	got := ex.Extract("Buy P&G products, or maybe l'oreal, or even C++ Labs tools.")
	want := []string{"P&G", "L'Oreal", "C++ Labs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

// Lexicon matching is plain substring, not word-boundary aware. "Sun" matches
// inside "Samsung"; that behavior is intentional and must not change silently.
func TestLexiconExtractor_SubstringNotWordBoundary(t *testing.T) {
	ex := NewLexiconExtractor([]string{"Sun"})

	got := ex.Extract("The Samsung flagship is popular.")
	if len(got) != 1 || got[0] != "Sun" {
		t.Errorf("Extract() = %v, want [Sun]", got)
	}
}

// Both strategies must agree on clean text: markup on the marked-up version,
// lexicon on the raw version.
func TestStrategies_AgreeOnCleanText(t *testing.T) {
	markup := NewMarkupExtractor()
	lexicon := NewLexiconExtractor([]string{"Acme", "Globex"})

	fromMarkup := markup.Extract("Try **Acme** or **Globex**.")
	fromLexicon := lexicon.Extract("Try Acme or Globex.")

	if !reflect.DeepEqual(fromMarkup, fromLexicon) {
		t.Errorf("strategies disagree: markup=%v lexicon=%v", fromMarkup, fromLexicon)
	}
}

// Extraction is a pure function of its input.
func TestExtract_Deterministic(t *testing.T) {
	markup := NewMarkupExtractor()
	lexicon := NewLexiconExtractor([]string{"Acme", "Globex"})
	text := "Try **Acme** or **Globex**."

	if got1, got2 := markup.Extract(text), markup.Extract(text); !reflect.DeepEqual(got1, got2) {
		t.Errorf("markup extraction not deterministic: %v vs %v", got1, got2)
	}
	if got1, got2 := lexicon.Extract(text), lexicon.Extract(text); !reflect.DeepEqual(got1, got2) {
		t.Errorf("lexicon extraction not deterministic: %v vs %v", got1, got2)
	}
}
