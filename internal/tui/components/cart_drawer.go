package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/elegance/internal/cart"
	"github.com/mmcdole/elegance/internal/format"
	"github.com/mmcdole/elegance/internal/tui/styles"
)

const drawerWidth = 46

// CartDrawer is the side panel listing the cart with quantity controls.
// Visibility follows the manager's open flag.
type CartDrawer struct {
	cart   *cart.Manager
	cursor int
	height int
}

// NewCartDrawer creates a drawer over the cart manager
func NewCartDrawer(m *cart.Manager) CartDrawer {
	return CartDrawer{cart: m}
}

// IsVisible reports whether the cart is open
func (d CartDrawer) IsVisible() bool {
	return d.cart.IsOpen()
}

// SetHeight sets the render height
func (d *CartDrawer) SetHeight(height int) { d.height = height }

// Cursor returns the highlighted line index
func (d CartDrawer) Cursor() int { return d.cursor }

// Width returns the drawer width including its border
func (d CartDrawer) Width() int { return drawerWidth }

// Update handles drawer keys and applies them to the cart
func (d CartDrawer) Update(msg tea.Msg) (CartDrawer, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !d.cart.IsOpen() {
		return d, nil
	}

	items := d.cart.Items()
	d.clamp(len(items))

	switch {
	case key.Matches(keyMsg, CartDrawerKeys.Close):
		d.cart.CloseCart()
	case key.Matches(keyMsg, CartDrawerKeys.Up):
		if d.cursor > 0 {
			d.cursor--
		}
	case key.Matches(keyMsg, CartDrawerKeys.Down):
		if d.cursor < len(items)-1 {
			d.cursor++
		}
	case key.Matches(keyMsg, CartDrawerKeys.Plus):
		if len(items) > 0 {
			it := items[d.cursor]
			d.cart.UpdateQuantity(it.ID, it.Quantity+1)
		}
	case key.Matches(keyMsg, CartDrawerKeys.Minus):
		if len(items) > 0 {
			it := items[d.cursor]
			d.cart.UpdateQuantity(it.ID, it.Quantity-1)
		}
	case key.Matches(keyMsg, CartDrawerKeys.Remove):
		if len(items) > 0 {
			d.cart.RemoveItem(items[d.cursor].ID)
			d.clamp(len(items) - 1)
		}
	case key.Matches(keyMsg, CartDrawerKeys.Clear):
		if len(items) > 0 {
			d.cart.Clear()
			d.cursor = 0
		}
	}
	return d, nil
}

func (d *CartDrawer) clamp(n int) {
	if d.cursor >= n {
		d.cursor = n - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
}

// View renders the drawer from a cart snapshot
func (d CartDrawer) View() string {
	snap := d.cart.Snapshot()
	inner := drawerWidth - 5

	header := styles.ModalTitleStyle.Render(fmt.Sprintf("Minha Sacola (%d)", snap.Count))

	if len(snap.Items) == 0 {
		body := lipgloss.JoinVertical(lipgloss.Left,
			header,
			styles.SubtitleStyle.Render("Sua sacola está vazia"),
			styles.DimStyle.Render("Adicione produtos para continuar"),
		)
		return d.frame(body)
	}

	cursor := d.cursor
	if cursor >= len(snap.Items) {
		cursor = len(snap.Items) - 1
	}

	lines := []string{header}
	for i, it := range snap.Items {
		name := styles.Truncate(it.Name, inner)
		minus := styles.AccentStyle.Render("−")
		if it.Quantity <= 1 {
			minus = styles.DimStyle.Render("−")
		}
		qty := fmt.Sprintf("%s %d %s", minus, it.Quantity, styles.AccentStyle.Render("+"))
		total := format.Currency(it.LineTotal())

		block := []string{styles.TitleStyle.Render(name)}
		if v := it.Variant(); v != "" {
			block = append(block, styles.DimStyle.Render(v))
		}
		block = append(block, spread(qty, styles.PriceStyle.Render(total), inner))

		entry := lipgloss.JoinVertical(lipgloss.Left, block...)
		if i == cursor {
			entry = styles.SelectedLineStyle.Width(inner).Render(entry)
		}
		lines = append(lines, entry, "")
	}

	lines = append(lines,
		spread("Subtotal", format.Currency(snap.Subtotal), inner),
		spread("Frete", styles.FreeShippingStyle.Render("Grátis"), inner),
		spread(styles.TitleStyle.Render("Total"), styles.PriceStyle.Render(format.Currency(snap.Total)), inner),
		"",
		styles.HelpKeyStyle.Render("+/-")+styles.HelpDescStyle.Render(" qtd  ")+
			styles.HelpKeyStyle.Render("x")+styles.HelpDescStyle.Render(" remover  ")+
			styles.HelpKeyStyle.Render("X")+styles.HelpDescStyle.Render(" limpar  ")+
			styles.HelpKeyStyle.Render("esc")+styles.HelpDescStyle.Render(" fechar"),
	)

	return d.frame(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (d CartDrawer) frame(body string) string {
	style := styles.DrawerStyle.Width(drawerWidth - 1)
	if d.height > 0 {
		style = style.Height(d.height)
	}
	return style.Render(body)
}

// spread renders left and right aligned to opposite edges of width
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
