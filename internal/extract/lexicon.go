package extract

import "regexp"

// LexiconExtractor tests every brand in a fixed, ordered lexicon against the
// text. Matching is case-insensitive literal substring and deliberately not
// word-boundary aware: a short brand name can match inside a longer unrelated
// word. That is a known precision/recall trade-off inherited from how the
// dataset was produced; keep it.
type LexiconExtractor struct {
	brands   []string
	matchers []*regexp.Regexp
}

// NewLexiconExtractor compiles one matcher per brand up front, so a scan over
// the whole dataset stays interactive with no per-response compilation.
func NewLexiconExtractor(brands []string) *LexiconExtractor {
	e := &LexiconExtractor{
		brands:   brands,
		matchers: make([]*regexp.Regexp, len(brands)),
	}
	for i, b := range brands {
		// QuoteMeta: brand names carry pattern metacharacters (L'Oreal, P&G).
		e.matchers[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(b))
	}
	return e
}

// Extract returns the matching brands in lexicon order.
func (e *LexiconExtractor) Extract(text string) []string {
	var names []string
	for i, m := range e.matchers {
		if m.MatchString(text) {
			names = append(names, e.brands[i])
		}
	}
	return dedupe(names)
}
