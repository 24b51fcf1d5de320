package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/mmcdole/elegance/internal/domain"
	"github.com/sahilm/fuzzy"
)

// productNames implements fuzzy.Source over lowercase product names
type productNames []domain.Product

func (p productNames) String(i int) string { return strings.ToLower(p[i].Name) }

func (p productNames) Len() int { return len(p) }

// applyFilter refreshes the results row from the search query. Ranking
// comes from the catalog service; the row highlights matched characters.
func (m *Model) applyFilter() {
	query := strings.TrimSpace(m.Search.Query())
	if query == "" {
		m.Results.SetProducts(nil)
		m.Results.SetMatches(nil)
		m.setFocus(m.Focus)
		return
	}

	results := m.Catalog.Search(query)
	m.Results.SetProducts(results)
	m.Results.SetMatches(matchPositions(query, results))
	m.Results.SetTitle(ResultsTitle + ` para "` + query + `"`)

	// Land on the results row so enter opens the best match
	m.setFocus(1)
	m.logger.Debug("search filter applied", "query", query, "results", len(results))
}

// matchPositions maps each product to the rune positions of its name
// that the query matched
func matchPositions(query string, products []domain.Product) map[domain.ProductID][]int {
	source := productNames(products)
	matches := fuzzy.FindFrom(strings.ToLower(query), source)

	out := make(map[domain.ProductID][]int, len(matches))
	for _, match := range matches {
		out[products[match.Index].ID] = runePositions(match.Str, match.MatchedIndexes)
	}
	return out
}

// runePositions converts byte offsets within s to rune offsets
func runePositions(s string, byteIndexes []int) []int {
	out := make([]int, 0, len(byteIndexes))
	for _, b := range byteIndexes {
		if b < 0 || b > len(s) {
			continue
		}
		out = append(out, utf8.RuneCountInString(s[:b]))
	}
	return out
}
