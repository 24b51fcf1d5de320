package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/elegance/internal/carousel"
	"github.com/mmcdole/elegance/internal/domain"
	"github.com/mmcdole/elegance/internal/tui/styles"
)

// Hero renders the single-slide banner carousel
type Hero struct {
	engine  *carousel.Engine
	slides  []domain.Slide
	focused bool
	width   int
}

// NewHero creates a hero over slides backed by a single-item engine
func NewHero(engine *carousel.Engine, slides []domain.Slide) *Hero {
	engine.SetItemCount(len(slides))
	return &Hero{
		engine: engine,
		slides: slides,
	}
}

// SetFocused marks the hero as the keyboard target
func (h *Hero) SetFocused(focused bool) { h.focused = focused }

// SetWidth sets the render width
func (h *Hero) SetWidth(width int) { h.width = width }

// Next advances to the following slide; ignored mid-transition
func (h *Hero) Next() bool { return h.engine.Advance(carousel.Next) }

// Prev goes back one slide; ignored mid-transition
func (h *Hero) Prev() bool { return h.engine.Advance(carousel.Prev) }

// GoTo jumps to slide i; ignored mid-transition or when out of range
func (h *Hero) GoTo(i int) bool { return h.engine.GoTo(i) }

// Current returns the active slide
func (h *Hero) Current() (domain.Slide, bool) {
	i := h.engine.Current()
	if i < 0 || i >= len(h.slides) {
		return domain.Slide{}, false
	}
	return h.slides[i], true
}

// View renders the active slide with arrows and numbered indicators
func (h *Hero) View() string {
	if len(h.slides) == 0 {
		return ""
	}
	w := h.engine.Window()
	slide := h.slides[w.Start]

	title := styles.HeroTitleStyle.Render(slide.Title)
	subtitle := styles.SubtitleStyle.Render(slide.Subtitle)
	if w.State == carousel.StateTransitioning {
		title = styles.DimStyle.Render(slide.Title)
	}
	button := styles.ButtonStyle.Render(slide.ButtonText)

	content := lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "", button)

	if w.ShowControls {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", h.renderIndicators(w))
	}

	style := styles.HeroStyle
	if h.focused {
		style = styles.HeroFocusedStyle
	}

	if !w.ShowControls {
		if h.width > 4 {
			style = style.Width(h.width - 2)
		}
		return style.Render(content)
	}

	left := styles.ArrowStyle.Render("‹ ")
	right := styles.ArrowStyle.Render(" ›")
	if inner := h.width - 2 - lipgloss.Width(left) - lipgloss.Width(right); inner > 0 {
		style = style.Width(inner)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, left, style.Render(content), right)
}

func (h *Hero) renderIndicators(w carousel.Window) string {
	parts := make([]string, w.Count)
	for i := range parts {
		label := string(rune('1' + i))
		if i >= 9 {
			label = "•"
		}
		if i == w.Start {
			parts[i] = styles.IndicatorActiveStyle.Render("[" + label + "]")
		} else {
			parts[i] = styles.IndicatorStyle.Render(" " + label + " ")
		}
	}
	return strings.Join(parts, " ")
}
