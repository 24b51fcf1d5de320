package tui

import (
	"testing"

	"github.com/mmcdole/elegance/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestChannelObserverNeverBlocks(t *testing.T) {
	ch := make(chan domain.StateChange, 1)
	obs := NewChannelObserver(ch)

	obs.OnStateChange(domain.StateChange{Source: domain.SourceCart})
	obs.OnStateChange(domain.StateChange{Source: domain.SourceCarousel})

	assert.Len(t, ch, 1)
	assert.Equal(t, domain.SourceCart, (<-ch).Source)
}

func TestWaitForStateChangeCmd(t *testing.T) {
	assert.Nil(t, WaitForStateChangeCmd(nil))

	ch := make(chan domain.StateChange, 1)
	ch <- domain.StateChange{Source: domain.SourceCart}
	msg := WaitForStateChangeCmd(ch)()
	assert.Equal(t, StateChangedMsg{Change: domain.StateChange{Source: domain.SourceCart}}, msg)

	close(ch)
	assert.Nil(t, WaitForStateChangeCmd(ch)())
}
