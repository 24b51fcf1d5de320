// Package cart owns the shopping cart state: line items, drawer
// visibility and the transient toast notification.
//
// Only Manager methods mutate the cart. Every state-changing mutation
// writes the full item list through the domain.CartStore and publishes a
// domain.StateChange; notification expiry is a cancellable timer owned by
// the manager.
package cart

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mmcdole/elegance/internal/clock"
	"github.com/mmcdole/elegance/internal/domain"
)

// DefaultNotificationTTL is how long a toast stays visible
const DefaultNotificationTTL = 3 * time.Second

// ClearedText is the toast shown after Clear
const ClearedText = "Sacola limpa"

// Options configures a Manager. Zero values select defaults.
type Options struct {
	NotificationTTL time.Duration
	Scheduler       clock.Scheduler
	Observer        domain.StateObserver
	Logger          *slog.Logger
}

// Snapshot is a consistent copy of the cart state with derived aggregates
type Snapshot struct {
	Items        []domain.LineItem
	IsOpen       bool
	Notification *domain.Notification
	Count        int
	Subtotal     float64
	Total        float64
}

// Manager is the cart state container shared by every view
type Manager struct {
	store    domain.CartStore
	logger   *slog.Logger
	sched    clock.Scheduler
	observer domain.StateObserver
	ttl      time.Duration

	mu           sync.Mutex
	items        []domain.LineItem
	open         bool
	notification *domain.Notification
	expiry       clock.Timer
	expiryGen    uint64
}

// NewManager creates an empty cart backed by store. Call Load to restore
// persisted items.
func NewManager(store domain.CartStore, opts Options) *Manager {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = clock.Real()
	}
	if opts.Observer == nil {
		opts.Observer = domain.NoOpObserver{}
	}
	if opts.NotificationTTL <= 0 {
		opts.NotificationTTL = DefaultNotificationTTL
	}
	return &Manager{
		store:    store,
		logger:   opts.Logger,
		sched:    opts.Scheduler,
		observer: opts.Observer,
		ttl:      opts.NotificationTTL,
		items:    []domain.LineItem{},
	}
}

// Load restores the persisted items. Corrupt data is logged and replaced
// by an empty cart; no error reaches the caller.
func (m *Manager) Load() {
	items, err := m.store.Load()
	if err != nil {
		if errors.Is(err, domain.ErrCorruptCart) {
			m.logger.Warn("discarding corrupt persisted cart", "error", err)
		} else {
			m.logger.Warn("failed to load persisted cart", "error", err)
		}
		items = nil
	}

	items, dropped := reconcile(items)
	if dropped > 0 {
		m.logger.Warn("dropped invalid persisted cart entries", "dropped", dropped)
	}

	m.mu.Lock()
	m.items = items
	m.mu.Unlock()

	m.logger.Info("cart loaded", "items", len(items))
	m.notify()
}

// reconcile drops entries that violate line item invariants and merges
// duplicate IDs into their first occurrence.
func reconcile(items []domain.LineItem) ([]domain.LineItem, int) {
	out := make([]domain.LineItem, 0, len(items))
	index := make(map[domain.ProductID]int, len(items))
	dropped := 0

	for _, item := range items {
		if item.ID == "" || item.Quantity < 1 || item.Price < 0 {
			dropped++
			continue
		}
		if i, ok := index[item.ID]; ok {
			out[i].Quantity += item.Quantity
			dropped++
			continue
		}
		index[item.ID] = len(out)
		out = append(out, item)
	}
	return out, dropped
}

// AddItem adds one unit of product. An existing line keeps its original
// size and color; only its quantity grows.
func (m *Manager) AddItem(p domain.Product, size, color string) {
	m.mu.Lock()
	var text string
	if i := m.indexOf(p.ID); i >= 0 {
		m.items[i].Quantity++
		text = fmt.Sprintf("%s - quantidade atualizada!", p.Name)
	} else {
		m.items = append(m.items, domain.LineItem{
			ID:            p.ID,
			Name:          p.Name,
			Price:         p.Price,
			Image:         p.Image,
			Quantity:      1,
			SelectedSize:  size,
			SelectedColor: color,
		})
		text = fmt.Sprintf("%s adicionado à sacola!", p.Name)
	}
	m.persistLocked()
	m.showLocked(text, domain.NotificationSuccess)
	m.mu.Unlock()

	m.logger.Debug("cart item added", "id", p.ID, "size", size, "color", color)
	m.notify()
}

// RemoveItem deletes the line for id. Absent IDs are ignored.
func (m *Manager) RemoveItem(id domain.ProductID) {
	m.mu.Lock()
	i := m.indexOf(id)
	if i < 0 {
		m.mu.Unlock()
		return
	}
	name := m.items[i].Name
	m.items = append(m.items[:i:i], m.items[i+1:]...)
	m.persistLocked()
	m.showLocked(fmt.Sprintf("%s removido da sacola", name), domain.NotificationInfo)
	m.mu.Unlock()

	m.logger.Debug("cart item removed", "id", id)
	m.notify()
}

// UpdateQuantity sets the quantity for id. Quantities below 1 are
// rejected; removal goes through RemoveItem.
func (m *Manager) UpdateQuantity(id domain.ProductID, quantity int) {
	if quantity < 1 {
		return
	}

	m.mu.Lock()
	i := m.indexOf(id)
	if i < 0 || m.items[i].Quantity == quantity {
		m.mu.Unlock()
		return
	}
	m.items[i].Quantity = quantity
	m.persistLocked()
	m.mu.Unlock()

	m.notify()
}

// Clear empties the cart
func (m *Manager) Clear() {
	m.mu.Lock()
	m.items = []domain.LineItem{}
	m.persistLocked()
	m.showLocked(ClearedText, domain.NotificationInfo)
	m.mu.Unlock()

	m.logger.Debug("cart cleared")
	m.notify()
}

// OpenCart shows the cart drawer
func (m *Manager) OpenCart() { m.setOpen(func(bool) bool { return true }) }

// CloseCart hides the cart drawer
func (m *Manager) CloseCart() { m.setOpen(func(bool) bool { return false }) }

// ToggleCart flips the drawer visibility
func (m *Manager) ToggleCart() { m.setOpen(func(open bool) bool { return !open }) }

func (m *Manager) setOpen(next func(bool) bool) {
	m.mu.Lock()
	prev := m.open
	m.open = next(prev)
	changed := prev != m.open
	m.mu.Unlock()

	if changed {
		m.notify()
	}
}

// IsOpen reports whether the drawer is visible
func (m *Manager) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Items returns a copy of the line items in insertion order
func (m *Manager) Items() []domain.LineItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.LineItem(nil), m.items...)
}

// Item returns the line for id
func (m *Manager) Item(id domain.ProductID) (domain.LineItem, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexOf(id); i >= 0 {
		return m.items[i], true
	}
	return domain.LineItem{}, false
}

// Notification returns the current toast, if any
func (m *Manager) Notification() (domain.Notification, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.notification == nil {
		return domain.Notification{}, false
	}
	return *m.notification, true
}

// Count returns the total number of units in the cart
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return count(m.items)
}

// Subtotal returns Σ price × quantity
func (m *Manager) Subtotal() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return subtotal(m.items)
}

// Total returns the amount due. No discount or shipping rules exist yet,
// so it equals the subtotal.
func (m *Manager) Total() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return total(m.items)
}

// Snapshot returns the full cart state read under a single lock
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Items:    append([]domain.LineItem(nil), m.items...),
		IsOpen:   m.open,
		Count:    count(m.items),
		Subtotal: subtotal(m.items),
		Total:    total(m.items),
	}
	if m.notification != nil {
		n := *m.notification
		snap.Notification = &n
	}
	return snap
}

// Shutdown cancels the pending notification timer
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.expiry != nil {
		m.expiry.Stop()
		m.expiry = nil
	}
	m.expiryGen++
}

// === Internals (caller holds m.mu) ===

func (m *Manager) indexOf(id domain.ProductID) int {
	for i := range m.items {
		if m.items[i].ID == id {
			return i
		}
	}
	return -1
}

// persistLocked writes the item list. Failures are logged; in-memory
// state stays authoritative for the session.
func (m *Manager) persistLocked() {
	if err := m.store.Save(m.items); err != nil {
		m.logger.Warn("failed to persist cart", "error", err, "items", len(m.items))
	}
}

// showLocked replaces the current notification and restarts its expiry.
func (m *Manager) showLocked(text string, kind domain.NotificationKind) {
	m.notification = &domain.Notification{Text: text, Kind: kind}

	if m.expiry != nil {
		m.expiry.Stop()
	}
	m.expiryGen++
	gen := m.expiryGen
	m.expiry = m.sched.AfterFunc(m.ttl, func() { m.expire(gen) })
}

func (m *Manager) expire(gen uint64) {
	m.mu.Lock()
	if gen != m.expiryGen || m.notification == nil {
		// A newer notification owns the timer
		m.mu.Unlock()
		return
	}
	m.notification = nil
	m.expiry = nil
	m.mu.Unlock()

	m.notify()
}

func (m *Manager) notify() {
	m.observer.OnStateChange(domain.StateChange{Source: domain.SourceCart})
}

// === Aggregates ===

func count(items []domain.LineItem) int {
	n := 0
	for _, item := range items {
		n += item.Quantity
	}
	return n
}

func subtotal(items []domain.LineItem) float64 {
	sum := 0.0
	for _, item := range items {
		sum += item.LineTotal()
	}
	return sum
}

func total(items []domain.LineItem) float64 {
	return subtotal(items)
}
