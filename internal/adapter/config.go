package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/mmcdole/elegance/internal/domain"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Storage StorageConfig `mapstructure:"storage"`
	Cart    CartConfig    `mapstructure:"cart"`
	UI      UIConfig      `mapstructure:"ui"`
	Hero    HeroConfig    `mapstructure:"hero"`
	Promo   BannerConfig  `mapstructure:"promo"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds the product catalog endpoint
type CatalogConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// StorageConfig holds the local cart store location
type StorageConfig struct {
	Path string `mapstructure:"path"` // Empty = memory only
}

// CartConfig holds cart behavior settings
type CartConfig struct {
	ToastDuration time.Duration `mapstructure:"toast_duration"`
}

// UIConfig holds carousel and layout settings
type UIConfig struct {
	PageSize     int           `mapstructure:"page_size"`     // Products per carousel view
	HeroInterval time.Duration `mapstructure:"hero_interval"` // Hero autoplay period (0 = off)
	SettleDelay  time.Duration `mapstructure:"settle_delay"`  // Hero transition lock
}

// HeroConfig holds the hero banner slides
type HeroConfig struct {
	Slides []BannerConfig `mapstructure:"slides"`
}

// BannerConfig describes a hero slide or the promo banner
type BannerConfig struct {
	Image      string `mapstructure:"image"`
	Title      string `mapstructure:"title"`
	Subtitle   string `mapstructure:"subtitle"`
	ButtonText string `mapstructure:"button_text"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			URL:     "http://localhost:3000/products",
			Timeout: 15 * time.Second,
		},
		Storage: StorageConfig{
			Path: filepath.Join(defaultDataPath(), "cart.db"),
		},
		Cart: CartConfig{
			ToastDuration: 3 * time.Second,
		},
		UI: UIConfig{
			PageSize:     4,
			HeroInterval: 5 * time.Second,
			SettleDelay:  500 * time.Millisecond,
		},
		Hero: HeroConfig{
			Slides: defaultSlides(),
		},
		Promo: BannerConfig{
			Image:      "https://images.unsplash.com/photo-1445205170230-053b83016050?w=1600&h=600&fit=crop",
			Title:      "Outlet com até 50% OFF",
			Subtitle:   "Peças selecionadas com preços imperdíveis",
			ButtonText: "Ver Ofertas",
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "elegance.log"),
			Level: "INFO",
		},
	}
}

func defaultSlides() []BannerConfig {
	return []BannerConfig{
		{
			Image:      "https://images.unsplash.com/photo-1469334031218-e382a71b716b?w=1600&h=900&fit=crop",
			Title:      "Nova Coleção Verão",
			Subtitle:   "Descubra as tendências da estação com até 40% OFF",
			ButtonText: "Comprar Agora",
		},
		{
			Image:      "https://images.unsplash.com/photo-1483985988355-763728e1935b?w=1600&h=900&fit=crop",
			Title:      "Elegância em Cada Detalhe",
			Subtitle:   "Peças exclusivas para mulheres que fazem a diferença",
			ButtonText: "Ver Coleção",
		},
		{
			Image:      "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?w=1600&h=900&fit=crop",
			Title:      "Estilo Atemporal",
			Subtitle:   "Clássicos que nunca saem de moda",
			ButtonText: "Explorar",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "elegance")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "elegance")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "elegance")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "elegance")
	}
}

// LoadConfig loads configuration from file and environment.
// An empty path searches the default locations; a missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. ELEGANCE_CATALOG_URL
	v.SetEnvPrefix("ELEGANCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	// Slides come only from the file; Slides() supplies the built-ins
	cfg.Hero.Slides = nil
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.Storage.Path = expandHome(cfg.Storage.Path)
	cfg.Logging.File = expandHome(cfg.Logging.File)
	if cfg.UI.PageSize < 1 {
		cfg.UI.PageSize = 1
	}

	return cfg, nil
}

// bindDefaults registers scalar keys so AutomaticEnv can override them
func bindDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("catalog.url", cfg.Catalog.URL)
	v.SetDefault("catalog.timeout", cfg.Catalog.Timeout)
	v.SetDefault("storage.path", cfg.Storage.Path)
	v.SetDefault("cart.toast_duration", cfg.Cart.ToastDuration)
	v.SetDefault("ui.page_size", cfg.UI.PageSize)
	v.SetDefault("ui.hero_interval", cfg.UI.HeroInterval)
	v.SetDefault("ui.settle_delay", cfg.UI.SettleDelay)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// expandHome replaces a leading ~ with the user's home directory
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// Slides returns the hero slides as domain values
func (c *Config) Slides() []domain.Slide {
	slides := make([]domain.Slide, 0, len(c.Hero.Slides))
	for _, s := range c.Hero.Slides {
		slides = append(slides, domain.Slide{
			Image:      s.Image,
			Title:      s.Title,
			Subtitle:   s.Subtitle,
			ButtonText: s.ButtonText,
		})
	}
	if len(slides) == 0 {
		for _, s := range defaultSlides() {
			slides = append(slides, domain.Slide{Image: s.Image, Title: s.Title, Subtitle: s.Subtitle, ButtonText: s.ButtonText})
		}
	}
	return slides
}

// PromoBanner returns the promo banner as a domain value
func (c *Config) PromoBanner() domain.Promo {
	return domain.Promo{
		Image:      c.Promo.Image,
		Title:      c.Promo.Title,
		Subtitle:   c.Promo.Subtitle,
		ButtonText: c.Promo.ButtonText,
	}
}
