package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/elegance/internal/tui/styles"
)

// highlightMatches renders text with the runes at matchedIndexes emphasized.
// Indexes past the end of text are ignored.
func highlightMatches(text string, matchedIndexes []int, base lipgloss.Style) string {
	if len(matchedIndexes) == 0 {
		return base.Render(text)
	}

	matchSet := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder
	var run []rune
	runMatched := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runMatched {
			b.WriteString(styles.MatchHighlightStyle.Render(string(run)))
		} else {
			b.WriteString(base.Render(string(run)))
		}
		run = run[:0]
	}

	for i, r := range []rune(text) {
		matched := matchSet[i]
		if matched != runMatched {
			flush()
			runMatched = matched
		}
		run = append(run, r)
	}
	flush()

	return b.String()
}
