package tui

import (
	"strings"

	"github.com/mmcdole/elegance/internal/tui/components"
)

// rows returns the product rows in display order. The results row is
// present only while a search filter is applied.
func (m *Model) rows() []*components.ProductRow {
	if m.Search.IsActive() && strings.TrimSpace(m.Search.Query()) != "" {
		return []*components.ProductRow{m.Results, m.NewArrivals, m.BestSellers}
	}
	return []*components.ProductRow{m.NewArrivals, m.BestSellers}
}

// focusedRow returns the row under focus, or nil when the hero has it
func (m *Model) focusedRow() *components.ProductRow {
	rows := m.rows()
	if m.Focus < 1 || m.Focus > len(rows) {
		return nil
	}
	return rows[m.Focus-1]
}

// setFocus moves focus to section i, clamped to the visible sections
func (m *Model) setFocus(i int) {
	rows := m.rows()
	if i > len(rows) {
		i = len(rows)
	}
	if i < 0 {
		i = 0
	}
	m.Focus = i

	m.Hero.SetFocused(i == 0)
	for _, r := range []*components.ProductRow{m.Results, m.NewArrivals, m.BestSellers} {
		r.SetFocused(false)
	}
	if row := m.focusedRow(); row != nil {
		row.SetFocused(true)
	}
}

func (m *Model) focusNext() { m.setFocus(m.Focus + 1) }

func (m *Model) focusPrev() { m.setFocus(m.Focus - 1) }
