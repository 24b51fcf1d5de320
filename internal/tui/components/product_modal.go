package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/elegance/internal/domain"
	"github.com/mmcdole/elegance/internal/format"
	"github.com/mmcdole/elegance/internal/tui/styles"
)

const modalWidth = 52

type optionField int

const (
	fieldSize optionField = iota
	fieldColor
)

// ProductModal shows product details with size and color pickers
type ProductModal struct {
	visible bool
	product domain.Product

	field    optionField
	sizeIdx  int // -1 = none selected
	colorIdx int
}

// NewProductModal creates a hidden product modal
func NewProductModal() ProductModal {
	return ProductModal{sizeIdx: -1, colorIdx: -1}
}

// Show opens the modal for p with no size or color selected
func (m *ProductModal) Show(p domain.Product) {
	m.visible = true
	m.product = p
	m.sizeIdx = -1
	m.colorIdx = -1
	m.field = fieldSize
	if len(p.Sizes) == 0 {
		m.field = fieldColor
	}
}

// Hide dismisses the modal
func (m *ProductModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m ProductModal) IsVisible() bool {
	return m.visible
}

// Product returns the product being shown
func (m ProductModal) Product() domain.Product {
	return m.product
}

// Selection returns the chosen size and color (empty when unset)
func (m ProductModal) Selection() (size, color string) {
	if m.sizeIdx >= 0 && m.sizeIdx < len(m.product.Sizes) {
		size = m.product.Sizes[m.sizeIdx]
	}
	if m.colorIdx >= 0 && m.colorIdx < len(m.product.Colors) {
		color = m.product.Colors[m.colorIdx]
	}
	return size, color
}

// Update handles key events, returns (modal, cmd, addRequested)
func (m ProductModal) Update(msg tea.Msg) (ProductModal, tea.Cmd, bool) {
	if !m.visible {
		return m, nil, false
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}

	switch {
	case key.Matches(keyMsg, ProductModalKeys.Escape):
		m.Hide()
	case key.Matches(keyMsg, ProductModalKeys.Add):
		return m, nil, true
	case key.Matches(keyMsg, ProductModalKeys.Switch):
		if len(m.product.Sizes) > 0 && len(m.product.Colors) > 0 {
			if m.field == fieldSize {
				m.field = fieldColor
			} else {
				m.field = fieldSize
			}
		}
	case key.Matches(keyMsg, ProductModalKeys.Right):
		m.cycle(1)
	case key.Matches(keyMsg, ProductModalKeys.Left):
		m.cycle(-1)
	}
	return m, nil, false
}

// cycle steps the active picker through none, option 1, ..., option n
func (m *ProductModal) cycle(step int) {
	idx, n := &m.sizeIdx, len(m.product.Sizes)
	if m.field == fieldColor {
		idx, n = &m.colorIdx, len(m.product.Colors)
	}
	if n == 0 {
		return
	}
	// Shift by one so -1 (none) becomes slot 0
	slot := (*idx + 1 + step + n + 1) % (n + 1)
	*idx = slot - 1
}

// View renders the modal
func (m ProductModal) View() string {
	if !m.visible {
		return ""
	}
	p := m.product
	width := modalWidth - 4

	var lines []string
	if p.Tag != "" {
		lines = append(lines, styles.TagStyle.Render(p.Tag))
	}
	lines = append(lines, styles.ModalTitleStyle.Render(styles.Truncate(p.Name, width)))

	var badges []string
	if p.IsNew {
		badges = append(badges, styles.NewBadgeStyle.Render("Novo"))
	}
	if pct := format.Discount(p.Discount); pct != "" {
		badges = append(badges, styles.DiscountBadgeStyle.Render(pct))
	}
	if len(badges) > 0 {
		lines = append(lines, strings.Join(badges, " "))
	}

	price := styles.PriceStyle.Render(format.Currency(p.Price))
	if p.OldPrice > 0 {
		price = styles.OldPriceStyle.Render(format.Currency(p.OldPrice)) + " " + price
	}
	lines = append(lines, price, "")

	if p.Description != "" {
		lines = append(lines, lipgloss.NewStyle().Width(width).Foreground(styles.LightGray).Render(p.Description), "")
	}

	if len(p.Sizes) > 0 {
		lines = append(lines, m.renderPicker("Tamanho", p.Sizes, m.sizeIdx, m.field == fieldSize))
	}
	if len(p.Colors) > 0 {
		lines = append(lines, m.renderPicker("Cor", p.Colors, m.colorIdx, m.field == fieldColor))
	}
	if p.HasVariants() {
		lines = append(lines, "")
	}

	lines = append(lines,
		styles.ButtonStyle.Render("Adicionar à Sacola"),
		"",
		styles.HelpKeyStyle.Render("enter")+styles.HelpDescStyle.Render(" adicionar  ")+
			styles.HelpKeyStyle.Render("←/→")+styles.HelpDescStyle.Render(" opção  ")+
			styles.HelpKeyStyle.Render("esc")+styles.HelpDescStyle.Render(" fechar"),
	)

	return styles.ModalStyle.Width(modalWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m ProductModal) renderPicker(label string, options []string, selected int, active bool) string {
	heading := styles.SubtitleStyle.Render(label + ":")
	if active {
		heading = styles.AccentStyle.Render("› " + label + ":")
	}
	parts := []string{heading}
	for i, opt := range options {
		if i == selected {
			parts = append(parts, styles.OptionSelectedStyle.Render(opt))
		} else {
			parts = append(parts, styles.OptionStyle.Render(opt))
		}
	}
	return strings.Join(parts, " ")
}
