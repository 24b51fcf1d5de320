package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/elegance/internal/format"
	"github.com/mmcdole/elegance/internal/tui/components"
	"github.com/mmcdole/elegance/internal/tui/styles"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Carregando..."
	}

	switch m.State {
	case StateLoading:
		return m.renderLoading()
	case StateError:
		return m.renderError()
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	// The drawer narrows the storefront, so widths follow its visibility
	m.updateLayout()

	body := m.renderBody(m.Height - ChromeHeight)
	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderNavbar(),
		body,
		m.renderToast(),
		m.renderFooter(),
	)

	if m.Drawer.IsVisible() {
		view = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(m.contentWidth()).Render(view),
			m.Drawer.View(),
		)
	}

	// Overlay product modal if visible
	if m.Modal.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.Modal.View())
	}

	return view
}

func (m Model) renderLoading() string {
	frame := spinnerFrames[m.SpinnerFrame%len(spinnerFrames)]
	content := styles.SpinnerStyle.Render(frame) + " " + styles.SubtitleStyle.Render("Carregando catálogo...")
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderError() string {
	msg := "erro desconhecido"
	if m.Err != nil {
		msg = m.Err.Error()
	}
	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.ErrorStyle.Bold(true).Render("Não foi possível carregar o catálogo"),
		"",
		styles.DimStyle.Render(msg),
		"",
		styles.HelpKeyStyle.Render("r")+styles.HelpDescStyle.Render(" tentar novamente  ")+
			styles.HelpKeyStyle.Render("q")+styles.HelpDescStyle.Render(" sair"),
	)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(content))
}

func (m Model) renderNavbar() string {
	brand := styles.BrandStyle.Render("ELEGANCE")
	links := styles.SubtitleStyle.Render("Início  Novidades  Mais Vendidos")

	count := m.Cart.Count()
	bag := styles.SubtitleStyle.Render("Sacola ")
	if count > 0 {
		bag += styles.CartBadgeStyle.Render(fmt.Sprintf("%d", count))
	} else {
		bag += styles.DimStyle.Render("0")
	}

	width := m.contentWidth()
	left := brand + "  " + links
	gap := width - lipgloss.Width(left) - lipgloss.Width(bag) - 1
	if gap < 1 {
		gap = 1
	}
	return styles.NavbarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + bag)
}

// renderBody stacks the sections and scrolls so the focused one stays visible
func (m Model) renderBody(height int) string {
	type block struct {
		text  string
		focus int // Focus index, or -1 for unfocusable sections
	}

	var blocks []block
	if m.Search.IsActive() {
		blocks = append(blocks, block{text: m.Search.View(), focus: -1})
	}
	blocks = append(blocks, block{text: m.Hero.View(), focus: 0})

	rows := m.rows()
	for i, r := range rows {
		blocks = append(blocks, block{text: r.View(), focus: i + 1})
		// Promo sits between the first catalog row and the best sellers
		if r == m.NewArrivals {
			if promo := components.RenderPromo(m.Promo, m.contentWidth()); promo != "" {
				blocks = append(blocks, block{text: promo, focus: -1})
			}
		}
	}

	lines := func(bs []block) int {
		n := 0
		for _, b := range bs {
			n += lipgloss.Height(b.text)
		}
		return n
	}

	// Drop leading sections until the focused one fits
	for len(blocks) > 1 && lines(blocks) > height && blocks[0].focus != m.Focus {
		blocks = blocks[1:]
	}

	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.text
	}
	body := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if height > 0 {
		all := strings.Split(body, "\n")
		if len(all) > height {
			all = all[:height]
		}
		for len(all) < height {
			all = append(all, "")
		}
		body = strings.Join(all, "\n")
	}
	return body
}

func (m Model) renderToast() string {
	n, ok := m.Cart.Notification()
	if !ok {
		return ""
	}
	return components.RenderToast(n)
}

// renderFooter renders a single-line key help footer
func (m Model) renderFooter() string {
	type hint struct{ key, desc string }

	hints := []hint{
		{"↑/↓", "seção"},
		{"←/→", "navegar"},
		{"enter", "ver produto"},
		{"/", "buscar"},
		{"c", "sacola"},
		{"?", "ajuda"},
		{"q", "sair"},
	}

	parts := make([]string, 0, len(hints)+1)
	for _, h := range hints {
		parts = append(parts, styles.HelpKeyStyle.Render(h.key)+" "+styles.HelpDescStyle.Render(h.desc))
	}

	footer := strings.Join(parts, "  ")
	if subtotal := m.Cart.Subtotal(); subtotal > 0 {
		footer += "  " + styles.DimStyle.Render("│ ") + styles.PriceStyle.Render(format.Currency(subtotal))
	}
	return footer
}

func (m Model) renderHelp() string {
	groups := [][]string{
		{Keys.Up.Help().Key, Keys.Up.Help().Desc},
		{Keys.Down.Help().Key, Keys.Down.Help().Desc},
		{Keys.Left.Help().Key, Keys.Left.Help().Desc},
		{Keys.Right.Help().Key, Keys.Right.Help().Desc},
		{Keys.Slide.Help().Key, Keys.Slide.Help().Desc},
		{Keys.Enter.Help().Key, Keys.Enter.Help().Desc},
		{Keys.Filter.Help().Key, Keys.Filter.Help().Desc},
		{Keys.Cart.Help().Key, Keys.Cart.Help().Desc},
		{components.CartDrawerKeys.Plus.Help().Key, components.CartDrawerKeys.Plus.Help().Desc},
		{components.CartDrawerKeys.Minus.Help().Key, components.CartDrawerKeys.Minus.Help().Desc},
		{components.CartDrawerKeys.Remove.Help().Key, components.CartDrawerKeys.Remove.Help().Desc},
		{components.CartDrawerKeys.Clear.Help().Key, components.CartDrawerKeys.Clear.Help().Desc},
		{Keys.Escape.Help().Key, Keys.Escape.Help().Desc},
		{Keys.Quit.Help().Key, Keys.Quit.Help().Desc},
	}

	lines := []string{styles.ModalTitleStyle.Render("Atalhos")}
	for _, g := range groups {
		lines = append(lines, styles.HelpKeyStyle.Render(styles.Pad(g[0], 8))+styles.HelpDescStyle.Render(g[1]))
	}

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}
