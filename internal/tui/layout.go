package tui

// Vertical chrome: navbar, toast line and footer
const ChromeHeight = 3

// contentWidth returns the width left for the storefront body
func (m Model) contentWidth() int {
	w := m.Width
	if m.Drawer.IsVisible() {
		w -= m.Drawer.Width()
	}
	if w < 0 {
		w = 0
	}
	return w
}

// updateLayout pushes the current dimensions into the components
func (m *Model) updateLayout() {
	width := m.contentWidth()
	m.Hero.SetWidth(width)
	for _, r := range m.rows() {
		r.SetWidth(width)
	}
	m.Results.SetWidth(width)
	m.Drawer.SetHeight(m.Height - 2)
}
