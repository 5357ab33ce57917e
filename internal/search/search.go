package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search returns every line of content that contains query as an exact
// substring.
func Search(query, content string) []string {
	lines := Lines(content)
	matches := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(line, query) {
			matches = append(matches, line)
		}
	}
	return matches
}

// SearchCaseInsensitive returns every line of content that contains query
// once both are case folded. Matching lines are returned unfolded.
func SearchCaseInsensitive(query, content string) []string {
	// A Caser is not safe for concurrent use, so each search builds its own.
	folder := cases.Fold()
	folded := folder.String(query)

	lines := Lines(content)
	matches := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(folder.String(line), folded) {
			matches = append(matches, line)
		}
	}
	return matches
}

// Lines splits content into lines without their terminators. Both "\n" and
// "\r\n" end a line, a final line without a terminator is kept, and a trailing
// terminator does not produce an empty last line.
func Lines(content string) []string {
	lines := make([]string, 0, strings.Count(content, "\n")+1)
	for len(content) > 0 {
		idx := strings.IndexByte(content, '\n')
		if idx < 0 {
			lines = append(lines, content)
			break
		}
		line := content[:idx]
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, line)
		content = content[idx+1:]
	}
	return lines
}
