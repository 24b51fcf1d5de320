package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/elegance/internal/domain"
	"github.com/mmcdole/elegance/internal/service"
)

const defaultLoadTimeout = 30 * time.Second

// Command factories for async operations

// LoadCatalogCmd fetches the product catalog
func LoadCatalogCmd(svc *service.CatalogService, timeout time.Duration) tea.Cmd {
	if timeout <= 0 {
		timeout = defaultLoadTimeout
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := svc.Load(ctx); err != nil {
			return ErrMsg{Err: err, Context: "carregando catálogo"}
		}
		return CatalogLoadedMsg{Count: len(svc.Products())}
	}
}

// WaitForStateChangeCmd blocks until the next cart or carousel change.
// Returns nil once the channel is closed.
func WaitForStateChangeCmd(ch <-chan domain.StateChange) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return nil
		}
		return StateChangedMsg{Change: change}
	}
}

// TickCmd returns a command that sends a tick after the given duration
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}
