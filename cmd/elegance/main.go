package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/elegance/internal/adapter"
	"github.com/mmcdole/elegance/internal/adapter/catalog"
	"github.com/mmcdole/elegance/internal/cart"
	"github.com/mmcdole/elegance/internal/domain"
	"github.com/mmcdole/elegance/internal/service"
	"github.com/mmcdole/elegance/internal/store"
	"github.com/mmcdole/elegance/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

// changeBuffer sizes the cart/carousel change channel feeding the TUI
const changeBuffer = 64

type cliOptions struct {
	configPath string
	showCart   bool
	clearCart  bool
	exportCart bool
	importCart string
}

func main() {
	var showVersion bool
	var opts cliOptions
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&opts.configPath, "config", "", "path to config file")
	flag.BoolVar(&opts.showCart, "cart", false, "print the saved cart and exit")
	flag.BoolVar(&opts.clearCart, "clear-cart", false, "empty the saved cart and exit")
	flag.BoolVar(&opts.exportCart, "export-cart", false, "write the saved cart JSON to stdout and exit")
	flag.StringVar(&opts.importCart, "import-cart", "", "replace the saved cart with a JSON file and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("elegance %s\n", Version)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts cliOptions) error {
	// Load configuration
	cfg, err := adapter.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, logCloser, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
		logCloser = io.NopCloser(nil)
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	logger.Info("starting elegance", "version", Version)

	cartStore, err := store.NewCartStore(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open cart store: %w", err)
	}
	defer cartStore.Close()

	switch {
	case opts.clearCart:
		if err := cartStore.Reset(); err != nil {
			return err
		}
		fmt.Println(cart.ClearedText)
		return nil
	case opts.exportCart:
		return exportCart(os.Stdout, cartStore)
	case opts.importCart != "":
		return importCart(opts.importCart, cartStore)
	}

	changes := make(chan domain.StateChange, changeBuffer)
	observer := tui.NewChannelObserver(changes)

	mgr := cart.NewManager(cartStore, cart.Options{
		NotificationTTL: cfg.Cart.ToastDuration,
		Observer:        observer,
		Logger:          logger,
	})
	mgr.Load()
	defer mgr.Shutdown()

	if opts.showCart || !term.IsTerminal(int(os.Stdout.Fd())) {
		return printCartSummary(os.Stdout, mgr.Snapshot())
	}

	client := catalog.NewClient(cfg.Catalog.URL, cfg.Catalog.Timeout, logger)
	catalogSvc := service.NewCatalogService(client, logger)

	model := tui.NewModel(tui.Options{
		Catalog:      catalogSvc,
		Cart:         mgr,
		Changes:      changes,
		Observer:     observer,
		Slides:       cfg.Slides(),
		Promo:        cfg.PromoBanner(),
		PageSize:     cfg.UI.PageSize,
		HeroInterval: cfg.UI.HeroInterval,
		SettleDelay:  cfg.UI.SettleDelay,
		LoadTimeout:  cfg.Catalog.Timeout,
		Logger:       logger,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

func exportCart(w io.Writer, s *store.CartStore) error {
	data := s.Raw()
	if data == nil {
		data = []byte("[]")
	}
	_, err := fmt.Fprintf(w, "%s\n", data)
	return err
}

func importCart(path string, s *store.CartStore) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read cart file: %w", err)
	}
	var items []domain.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCorruptCart, err)
	}
	return s.WriteRaw(data)
}
