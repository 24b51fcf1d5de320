package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Handle state-specific keys
	switch m.State {
	case StateLoading:
		if key.Matches(msg, Keys.Quit) {
			return m, tea.Quit
		}
		return m, nil

	case StateError:
		switch {
		case key.Matches(msg, Keys.Retry):
			return m.retry()
		case key.Matches(msg, Keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	if m.ShowHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.ShowHelp = false
		}
		return m, nil
	}

	// Overlays capture every key while open
	if handled, newModel, cmd := m.routeToOverlay(msg); handled {
		return newModel, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true

	case key.Matches(msg, Keys.Filter):
		cmd := m.Search.Open()
		return m, cmd

	case key.Matches(msg, Keys.Cart):
		m.Cart.OpenCart()

	case key.Matches(msg, Keys.Escape):
		if m.Search.IsActive() {
			m.Search.Close()
			m.applyFilter()
			m.setFocus(0)
		}

	case key.Matches(msg, Keys.Up):
		m.focusPrev()

	case key.Matches(msg, Keys.Down):
		m.focusNext()

	case key.Matches(msg, Keys.Left):
		if row := m.focusedRow(); row != nil {
			row.MoveLeft()
		} else {
			m.Hero.Prev()
		}

	case key.Matches(msg, Keys.Right):
		if row := m.focusedRow(); row != nil {
			row.MoveRight()
		} else {
			m.Hero.Next()
		}

	case key.Matches(msg, Keys.Slide):
		m.Hero.GoTo(int(msg.Runes[0] - '1'))

	case key.Matches(msg, Keys.Enter):
		if row := m.focusedRow(); row != nil {
			if p, ok := row.Selected(); ok {
				m.Modal.Show(p)
			}
		} else {
			m.focusNext()
		}
	}

	return m, nil
}

// routeToOverlay sends the key to the topmost open overlay.
// Returns false when no overlay is open.
func (m Model) routeToOverlay(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	// Product modal
	if m.Modal.IsVisible() {
		var add bool
		var cmd tea.Cmd
		m.Modal, cmd, add = m.Modal.Update(msg)
		if add {
			size, color := m.Modal.Selection()
			m.Cart.AddItem(m.Modal.Product(), size, color)
			m.Modal.Hide()
		}
		return true, m, cmd
	}

	// Cart drawer
	if m.Drawer.IsVisible() {
		var cmd tea.Cmd
		m.Drawer, cmd = m.Drawer.Update(msg)
		return true, m, cmd
	}

	// Search input
	if m.Search.IsEditing() {
		var cmd tea.Cmd
		m.Search, cmd = m.Search.Update(msg)
		if m.Search.QueryChanged() {
			m.applyFilter()
		}
		if !m.Search.IsActive() {
			m.setFocus(0)
		}
		return true, m, cmd
	}

	return false, m, nil
}
