package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Rose       = lipgloss.Color("#E11D48")
	Gold       = lipgloss.Color("#D4A373")
	Ink        = lipgloss.Color("#1C1917")
	Stone      = lipgloss.Color("#292524")
	StoneLight = lipgloss.Color("#44403C")
	DimGray    = lipgloss.Color("#78716C")
	LightGray  = lipgloss.Color("#A8A29E")
	White      = lipgloss.Color("#FAFAF9")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Blue       = lipgloss.Color("#3B82F6")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Rose)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(Gold).
				Bold(true).
				MarginLeft(1)
)

// Navbar
var (
	BrandStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true).
			Padding(0, 1)

	NavbarStyle = lipgloss.NewStyle().
			Background(Ink).
			Foreground(LightGray)

	CartBadgeStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Rose).
			Bold(true).
			Padding(0, 1)
)

// Banner styles (hero and promo)
var (
	HeroStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gold).
			Padding(1, 3)

	HeroFocusedStyle = HeroStyle.
				BorderForeground(Rose)

	HeroTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(Ink).
			Background(Gold).
			Bold(true).
			Padding(0, 2)

	IndicatorStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	IndicatorActiveStyle = lipgloss.NewStyle().
				Foreground(Rose).
				Bold(true)

	PromoStyle = lipgloss.NewStyle().
			Background(Stone).
			Foreground(White).
			Padding(1, 3)
)

// Product card styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	CardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Rose).
				Padding(0, 1)

	PriceStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	OldPriceStyle = lipgloss.NewStyle().
			Foreground(DimGray).
			Strikethrough(true)

	TagStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Italic(true)

	NewBadgeStyle = lipgloss.NewStyle().
			Foreground(Ink).
			Background(Gold).
			Padding(0, 1)

	DiscountBadgeStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(Rose).
				Padding(0, 1)

	ArrowStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true)
)

// Modal and drawer styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Rose).
			Padding(1, 2).
			Background(Stone)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)

	DrawerStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(Gold).
			Padding(1, 2)

	OptionStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	OptionSelectedStyle = lipgloss.NewStyle().
				Foreground(Ink).
				Background(Gold).
				Padding(0, 1)

	SelectedLineStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(StoneLight)

	FreeShippingStyle = lipgloss.NewStyle().
				Foreground(Green).
				Bold(true)
)

// Toast styles
var (
	ToastSuccessStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(Green).
				Padding(0, 1)

	ToastInfoStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Blue).
			Padding(0, 1)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Gold)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Rose)
)

// Filter styles
var (
	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Rose).
				Bold(true)

	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(Rose).
				Bold(true)
)

// Truncate shortens s to width runes with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

// Pad right-pads s with spaces to width cells
func Pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
