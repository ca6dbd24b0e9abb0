package pdf

import "strings"

// DefaultSkimLines is the line budget when --nlines is not given.
const DefaultSkimLines = 6

// skimMarkers are tried in priority order. They are matched case-sensitively
// but drop the leading letter so that both "Introduction" and "introduction"
// hit.
var skimMarkers = []string{"ntroduction", "bstract", "ummary"}

// SkimPages is the page range the skimmer extracts: the front matter of a
// paper lives on pages 1-2.
const (
	SkimFirstPage = 1
	SkimLastPage  = 2
)

// Skim returns a short description for the extracted text. The first marker
// whose window is non-empty wins; otherwise the first nlines lines are
// returned verbatim. Entirely empty text yields an empty result, which is a
// valid outcome rather than an error.
func Skim(text string, nlines int) string {
	if nlines <= 0 {
		nlines = DefaultSkimLines
	}
	lines := strings.Split(text, "\n")
	for _, marker := range skimMarkers {
		if w := window(lines, marker, nlines); w != "" {
			return w
		}
	}
	return firstLines(lines, nlines)
}

// window returns the first line containing marker plus the n lines after it,
// clipped at the end of the text.
func window(lines []string, marker string, n int) string {
	for i, line := range lines {
		if strings.Contains(line, marker) {
			end := i + n + 1
			if end > len(lines) {
				end = len(lines)
			}
			return strings.TrimRight(strings.Join(lines[i:end], "\n"), "\n")
		}
	}
	return ""
}

func firstLines(lines []string, n int) string {
	if n > len(lines) {
		n = len(lines)
	}
	return strings.TrimRight(strings.Join(lines[:n], "\n"), "\n")
}
