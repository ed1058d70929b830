package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		SentryDSN string `env:"SENTRY_DSN"`
	}
	Store struct {
		Path string `env:"STORE_PATH" env-default:"./ig_reels_analytics.db"`
	}
	Instagram struct {
		Username   string `env:"INSTAGRAM_USER"`
		Password   string `env:"INSTAGRAM_PASS"`
		SessionDir string `env:"INSTAGRAM_SESSION_DIR" env-default:"./session-data"`
	}
	Browser struct {
		ExecutablePath    string        `env:"BROWSER_EXECUTABLE"`
		UserDataDir       string        `env:"BROWSER_USER_DATA_DIR" env-default:"./browser-user-data"`
		Headless          bool          `env:"BROWSER_HEADLESS" env-default:"true"`
		NavigationTimeout time.Duration `env:"BROWSER_NAVIGATION_TIMEOUT" env-default:"60s"`
		CookieTimeout     time.Duration `env:"BROWSER_COOKIE_TIMEOUT" env-default:"5s"`
	}
	Scraper struct {
		UserAgent      string        `env:"SCRAPER_USER_AGENT" env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36"`
		RequestTimeout time.Duration `env:"SCRAPER_REQUEST_TIMEOUT" env-default:"15s"`
		// Scroll-stall tuning. These are empirically chosen, not contracts:
		// large enough to avoid stopping early on a slow-loading grid.
		ScrollPause            time.Duration `env:"SCRAPER_SCROLL_PAUSE" env-default:"7s"`
		MaxStallScrolls        int           `env:"SCRAPER_MAX_STALL_SCROLLS" env-default:"60"`
		MaxStaleElementScrolls int           `env:"SCRAPER_MAX_STALE_ELEMENT_SCROLLS" env-default:"30"`
		MaxTotalScrolls        int           `env:"SCRAPER_MAX_TOTAL_SCROLLS" env-default:"700"`
	}
	Refresh struct {
		Enabled  bool          `env:"REFRESH_ENABLED" env-default:"false"`
		Interval time.Duration `env:"REFRESH_INTERVAL" env-default:"24h"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
