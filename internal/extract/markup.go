package extract

import "regexp"

var markupPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// MarkupExtractor treats substrings wrapped in double-asterisk emphasis markers
// as brand identities. Whatever is marked up IS a brand; no lexicon and no
// validation, so malformed markup surfaces as-is. Matching is case-sensitive.
type MarkupExtractor struct{}

func NewMarkupExtractor() *MarkupExtractor {
	return &MarkupExtractor{}
}

func (e *MarkupExtractor) Extract(text string) []string {
	matches := markupPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return dedupe(names)
}
