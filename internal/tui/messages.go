package tui

import "github.com/mmcdole/elegance/internal/domain"

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap exposes the underlying error to errors.Is
func (e ErrMsg) Unwrap() error { return e.Err }

// CatalogLoadedMsg signals that the product catalog has been fetched
type CatalogLoadedMsg struct {
	Count int
}

// StateChangedMsg carries a cart or carousel change into the update loop
type StateChangedMsg struct {
	Change domain.StateChange
}

// TickMsg drives the loading spinner
type TickMsg struct{}
