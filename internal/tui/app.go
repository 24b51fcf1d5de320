package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/elegance/internal/carousel"
	"github.com/mmcdole/elegance/internal/cart"
	"github.com/mmcdole/elegance/internal/clock"
	"github.com/mmcdole/elegance/internal/domain"
	"github.com/mmcdole/elegance/internal/service"
	"github.com/mmcdole/elegance/internal/tui/components"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateLoading ApplicationState = iota
	StateBrowsing
	StateError
)

// Section titles
const (
	NewArrivalsTitle = "Novidades"
	BestSellersTitle = "Mais Vendidos"
	ResultsTitle     = "Resultados"
)

const spinnerInterval = 100 * time.Millisecond

// Options wires the model to its services
type Options struct {
	Catalog *service.CatalogService
	Cart    *cart.Manager

	// Changes delivers cart and carousel notifications; Observer is the
	// sending side handed to the engines the model creates.
	Changes  <-chan domain.StateChange
	Observer domain.StateObserver

	Scheduler    clock.Scheduler
	Slides       []domain.Slide
	Promo        domain.Promo
	PageSize     int
	HeroInterval time.Duration
	SettleDelay  time.Duration
	LoadTimeout  time.Duration
	Logger       *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool
	Err   error

	// Services
	Catalog *service.CatalogService
	Cart    *cart.Manager

	// UI Components
	Hero        *components.Hero
	NewArrivals *components.ProductRow
	BestSellers *components.ProductRow
	Results     *components.ProductRow
	Modal       components.ProductModal
	Drawer      components.CartDrawer
	Search      components.SearchBar
	Promo       domain.Promo

	// Focus index: 0 is the hero, i > 0 is rows()[i-1]
	Focus int

	// Dimensions
	Width  int
	Height int

	// UI state
	ShowHelp     bool
	SpinnerFrame int

	changes     <-chan domain.StateChange
	engines     []*carousel.Engine
	loadTimeout time.Duration
	logger      *slog.Logger
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.PageSize < 1 {
		opts.PageSize = 1
	}

	heroEngine := carousel.New(carousel.Config{
		PageSize:         1,
		AutoplayInterval: opts.HeroInterval,
		SettleDelay:      opts.SettleDelay,
		Scheduler:        opts.Scheduler,
		Observer:         opts.Observer,
		Logger:           opts.Logger,
	})
	newRow := func() *carousel.Engine {
		return carousel.New(carousel.Config{
			PageSize:  opts.PageSize,
			Scheduler: opts.Scheduler,
			Observer:  opts.Observer,
			Logger:    opts.Logger,
		})
	}
	arrivals, sellers, results := newRow(), newRow(), newRow()

	return Model{
		State:       StateLoading,
		Catalog:     opts.Catalog,
		Cart:        opts.Cart,
		Hero:        components.NewHero(heroEngine, opts.Slides),
		NewArrivals: components.NewProductRow(NewArrivalsTitle, arrivals),
		BestSellers: components.NewProductRow(BestSellersTitle, sellers),
		Results:     components.NewProductRow(ResultsTitle, results),
		Modal:       components.NewProductModal(),
		Drawer:      components.NewCartDrawer(opts.Cart),
		Search:      components.NewSearchBar(),
		Promo:       opts.Promo,
		changes:     opts.Changes,
		engines:     []*carousel.Engine{heroEngine, arrivals, sellers, results},
		loadTimeout: opts.LoadTimeout,
		logger:      opts.Logger,
	}
}

// Close stops every carousel timer owned by the model
func (m Model) Close() {
	for _, e := range m.engines {
		e.Close()
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadCatalogCmd(m.Catalog, m.loadTimeout),
		WaitForStateChangeCmd(m.changes),
		TickCmd(spinnerInterval),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		if m.State != StateLoading {
			return m, nil
		}
		m.SpinnerFrame++
		return m, TickCmd(spinnerInterval)

	case CatalogLoadedMsg:
		m.State = StateBrowsing
		m.Err = nil
		m.NewArrivals.SetProducts(m.Catalog.NewArrivals())
		m.BestSellers.SetProducts(m.Catalog.BestSellers())
		if m.Search.IsActive() {
			m.applyFilter()
		}
		m.setFocus(m.Focus)
		m.logger.Info("catalog ready", "products", msg.Count)
		return m, nil

	case ErrMsg:
		m.logger.Error("catalog unavailable", "error", msg.Err)
		// A failed reload keeps the storefront if products are already cached
		if m.Catalog.Loaded() {
			m.State = StateBrowsing
			return m, nil
		}
		m.State = StateError
		m.Err = msg
		return m, nil

	case StateChangedMsg:
		// View reads live state, so re-rendering is all a change needs
		return m, WaitForStateChangeCmd(m.changes)
	}

	return m, nil
}

// retry restarts the catalog fetch from the error screen
func (m Model) retry() (tea.Model, tea.Cmd) {
	m.State = StateLoading
	m.Err = nil
	return m, tea.Batch(LoadCatalogCmd(m.Catalog, m.loadTimeout), TickCmd(spinnerInterval))
}
