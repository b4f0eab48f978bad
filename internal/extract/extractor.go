package extract

// Extractor recovers the set of brand identities present in one response text.
// Implementations return each brand at most once per call, so a brand repeated
// inside a single response contributes a single mention downstream.
type Extractor interface {
	Extract(text string) []string
}

// dedupe keeps the first occurrence of each name, preserving order.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var out []string
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
