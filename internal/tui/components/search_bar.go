package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/elegance/internal/tui/styles"
)

// SearchBar is the "/" product name filter input
type SearchBar struct {
	input   textinput.Model
	active  bool // Filter applied (query may be empty while typing)
	editing bool // Input has focus
	changed bool
}

// NewSearchBar creates an inactive search bar
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Buscar produtos..."
	ti.CharLimit = 60
	ti.Width = 40
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return SearchBar{input: ti}
}

// Open activates the bar and focuses the input, keeping any previous query
func (s *SearchBar) Open() tea.Cmd {
	s.active = true
	s.editing = true
	return s.input.Focus()
}

// Close clears the query and deactivates the bar
func (s *SearchBar) Close() {
	s.active = false
	s.editing = false
	s.changed = true
	s.input.SetValue("")
	s.input.Blur()
}

// IsActive reports whether a filter is applied
func (s SearchBar) IsActive() bool { return s.active }

// IsEditing reports whether the input captures keys
func (s SearchBar) IsEditing() bool { return s.editing }

// Query returns the current text
func (s SearchBar) Query() string { return s.input.Value() }

// QueryChanged reports whether the last Update changed the query
func (s SearchBar) QueryChanged() bool { return s.changed }

// Update handles input events while editing
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	s.changed = false
	if !s.editing {
		return s, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, FilterKeys.Escape):
			s.Close()
			return s, nil
		case key.Matches(keyMsg, FilterKeys.Enter):
			s.editing = false
			s.input.Blur()
			if s.input.Value() == "" {
				s.active = false
			}
			return s, nil
		}
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.changed = s.input.Value() != before
	return s, cmd
}

// View renders the bar
func (s SearchBar) View() string {
	if !s.active {
		return ""
	}
	prompt := styles.FilterPromptStyle.Render("/ ")
	if !s.editing {
		return prompt + styles.SubtitleStyle.Render(s.input.Value()) +
			styles.DimStyle.Render("  (esc limpa)")
	}
	return prompt + s.input.View()
}
