package domain

// ChangeSource identifies which state container changed
type ChangeSource int

const (
	SourceCart ChangeSource = iota
	SourceCarousel
)

// StateChange reports that a state container was mutated.
// Timer-driven changes (toast expiry, autoplay, settle) arrive the same way.
type StateChange struct {
	Source ChangeSource
	ID     string // Carousel instance ID (empty for the cart)
}

// StateObserver receives change notifications from the cart and carousels.
// Implementations must not block.
type StateObserver interface {
	OnStateChange(change StateChange)
}

// NoOpObserver discards change notifications (for tests and CLI use).
type NoOpObserver struct{}

func (NoOpObserver) OnStateChange(StateChange) {}
