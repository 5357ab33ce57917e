package search

// Func selects the lines of content that match query. The returned lines are
// substrings of content, kept in the order they appear.
type Func func(query, content string) []string

// ForMode returns the search function for the requested case mode.
func ForMode(caseSensitive bool) Func {
	if caseSensitive {
		return Search
	}
	return SearchCaseInsensitive
}
