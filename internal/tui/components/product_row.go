package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/elegance/internal/carousel"
	"github.com/mmcdole/elegance/internal/domain"
	"github.com/mmcdole/elegance/internal/format"
	"github.com/mmcdole/elegance/internal/tui/styles"
)

const (
	minCardWidth = 18
	arrowWidth   = 3
)

// ProductRow renders a paged carousel of product cards with a cursor
// inside the visible window
type ProductRow struct {
	title    string
	engine   *carousel.Engine
	products []domain.Product
	matches  map[domain.ProductID][]int

	offset  int // Cursor position within the window
	focused bool
	width   int
}

// NewProductRow creates a row backed by a paged carousel engine
func NewProductRow(title string, engine *carousel.Engine) *ProductRow {
	return &ProductRow{
		title:  title,
		engine: engine,
	}
}

// Title returns the section heading
func (r *ProductRow) Title() string { return r.title }

// SetTitle changes the section heading
func (r *ProductRow) SetTitle(title string) { r.title = title }

// SetProducts replaces the backing list and resets the view to the start
func (r *ProductRow) SetProducts(products []domain.Product) {
	r.products = products
	r.engine.SetItemCount(len(products))
	r.engine.GoTo(0)
	r.offset = 0
}

// SetMatches sets the name character positions to highlight per product
func (r *ProductRow) SetMatches(matches map[domain.ProductID][]int) {
	r.matches = matches
}

// Products returns the backing list
func (r *ProductRow) Products() []domain.Product { return r.products }

// Len returns the number of products in the row
func (r *ProductRow) Len() int { return len(r.products) }

// SetFocused marks the row as the keyboard target
func (r *ProductRow) SetFocused(focused bool) { r.focused = focused }

// SetWidth sets the render width
func (r *ProductRow) SetWidth(width int) { r.width = width }

// Window returns the engine's visible window
func (r *ProductRow) Window() carousel.Window { return r.engine.Window() }

// Selected returns the product under the cursor
func (r *ProductRow) Selected() (domain.Product, bool) {
	w := r.engine.Window()
	i := w.Start + r.offset
	if i < 0 || i >= len(r.products) || !w.Contains(i) {
		return domain.Product{}, false
	}
	return r.products[i], true
}

// SelectedIndex returns the absolute index under the cursor
func (r *ProductRow) SelectedIndex() int {
	return r.engine.Window().Start + r.offset
}

// MoveRight moves the cursor one card right, scrolling the window at the
// edge and wrapping to the first card after the last one
func (r *ProductRow) MoveRight() {
	w := r.engine.Window()
	visible := w.End - w.Start
	if visible == 0 {
		return
	}
	if r.offset < visible-1 {
		r.offset++
		return
	}
	if !r.engine.Advance(carousel.Next) || r.engine.Current() == 0 {
		r.offset = 0
	}
}

// MoveLeft moves the cursor one card left, scrolling the window at the
// edge and wrapping to the last card before the first one
func (r *ProductRow) MoveLeft() {
	w := r.engine.Window()
	visible := w.End - w.Start
	if visible == 0 {
		return
	}
	if r.offset > 0 {
		r.offset--
		return
	}
	prev := w.Start
	moved := r.engine.Advance(carousel.Prev)
	if !moved || prev == 0 {
		w = r.engine.Window()
		r.offset = w.End - w.Start - 1
	}
}

// clampOffset keeps the cursor inside the window after external changes
func (r *ProductRow) clampOffset() {
	w := r.engine.Window()
	visible := w.End - w.Start
	if r.offset >= visible {
		r.offset = visible - 1
	}
	if r.offset < 0 {
		r.offset = 0
	}
}

// View renders the heading and the visible cards
func (r *ProductRow) View() string {
	r.clampOffset()
	w := r.engine.Window()

	header := styles.SectionTitleStyle.Render(r.title)
	if w.ShowControls {
		header += styles.DimStyle.Render(fmt.Sprintf("  %d-%d de %d", w.Start+1, w.End, w.Count))
	}

	if len(r.products) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, styles.DimStyle.Render("  Nenhum produto encontrado"))
	}

	cardWidth := r.cardWidth(w)
	visible := carousel.Visible(r.products, w)
	cards := make([]string, 0, len(visible))
	for i, p := range visible {
		selected := r.focused && i == r.offset
		cards = append(cards, r.renderCard(p, cardWidth, selected))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Center, cards...)
	if w.ShowControls {
		left := styles.ArrowStyle.Render(" ‹ ")
		right := styles.ArrowStyle.Render(" › ")
		body = lipgloss.JoinHorizontal(lipgloss.Center, left, body, right)
	} else {
		body = strings.Repeat(" ", arrowWidth) + body
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (r *ProductRow) cardWidth(w carousel.Window) int {
	k := w.PageSize
	if k < 1 {
		k = 1
	}
	// Two border cells and two padding cells per card
	avail := r.width - 2*arrowWidth
	width := avail/k - 4
	if width < minCardWidth {
		width = minCardWidth
	}
	return width
}

func (r *ProductRow) renderCard(p domain.Product, width int, selected bool) string {
	name := styles.Truncate(p.Name, width)
	nameLine := highlightMatches(name, r.matches[p.ID], styles.TitleStyle)

	var badges []string
	if p.IsNew {
		badges = append(badges, styles.NewBadgeStyle.Render("Novo"))
	}
	if pct := format.Discount(p.Discount); pct != "" {
		badges = append(badges, styles.DiscountBadgeStyle.Render(pct))
	}
	badgeLine := strings.Join(badges, " ")

	priceLine := styles.PriceStyle.Render(format.Currency(p.Price))
	if p.OldPrice > 0 {
		priceLine += " " + styles.OldPriceStyle.Render(format.Currency(p.OldPrice))
	}

	tagLine := styles.TagStyle.Render(styles.Truncate(p.Tag, width))

	content := lipgloss.JoinVertical(lipgloss.Left,
		nameLine,
		tagLine,
		badgeLine,
		priceLine,
	)

	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}
	return style.Width(width + 2).Render(content)
}
