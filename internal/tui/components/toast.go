package components

import (
	"github.com/mmcdole/elegance/internal/domain"
	"github.com/mmcdole/elegance/internal/tui/styles"
)

// RenderToast renders the transient cart notification
func RenderToast(n domain.Notification) string {
	if n.Kind == domain.NotificationInfo {
		return styles.ToastInfoStyle.Render("ℹ " + n.Text)
	}
	return styles.ToastSuccessStyle.Render("✓ " + n.Text)
}
