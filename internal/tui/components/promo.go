package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/elegance/internal/domain"
	"github.com/mmcdole/elegance/internal/tui/styles"
)

// RenderPromo renders the static promo banner at the given width
func RenderPromo(p domain.Promo, width int) string {
	if p.Title == "" {
		return ""
	}
	content := lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left,
			styles.HeroTitleStyle.Render(p.Title),
			styles.SubtitleStyle.Render(p.Subtitle),
		),
		"   ",
		styles.ButtonStyle.Render(p.ButtonText),
	)
	style := styles.PromoStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(content)
}
