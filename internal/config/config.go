package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BrowserType selects the browser engine driven by playwright.
type BrowserType string

const (
	Chromium BrowserType = "chromium"
	Firefox  BrowserType = "firefox"
	WebKit   BrowserType = "webkit"
)

// Config holds every recognized option for a test run. It is built once by Load,
// validated eagerly, and treated as read-only afterwards.
type Config struct {
	BaseURL           string
	Browser           BrowserType
	Headless          bool
	SlowMo            time.Duration
	ViewportWidth     int
	ViewportHeight    int
	DefaultTimeout    time.Duration
	NavigationTimeout time.Duration
	ScreenshotDir     string
	LogLevel          string
	LogFile           string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", "https://www.saucedemo.com")
	v.SetDefault("browser", string(Chromium))
	v.SetDefault("headless", true)
	v.SetDefault("slow_mo", 0)
	v.SetDefault("viewport_width", 1920)
	v.SetDefault("viewport_height", 1080)
	v.SetDefault("default_timeout", 30000)
	v.SetDefault("navigation_timeout", 60000)
	v.SetDefault("screenshot_dir", "screenshots")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
}

// Load builds the configuration from defaults and environment variables.
// A .env file in the working directory is honored when present. Timeouts and
// slow-mo are given in milliseconds, matching the driver's unit.
func Load() (*Config, error) {
	// Missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		BaseURL:           strings.TrimRight(v.GetString("base_url"), "/"),
		Browser:           BrowserType(strings.ToLower(v.GetString("browser"))),
		Headless:          v.GetBool("headless"),
		SlowMo:            time.Duration(v.GetInt("slow_mo")) * time.Millisecond,
		ViewportWidth:     v.GetInt("viewport_width"),
		ViewportHeight:    v.GetInt("viewport_height"),
		DefaultTimeout:    time.Duration(v.GetInt("default_timeout")) * time.Millisecond,
		NavigationTimeout: time.Duration(v.GetInt("navigation_timeout")) * time.Millisecond,
		ScreenshotDir:     v.GetString("screenshot_dir"),
		LogLevel:          v.GetString("log_level"),
		LogFile:           v.GetString("log_file"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("config: base_url must not be empty")
	}
	switch c.Browser {
	case Chromium, Firefox, WebKit:
	default:
		return fmt.Errorf("config: unsupported browser %q", c.Browser)
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("config: viewport %dx%d is invalid", c.ViewportWidth, c.ViewportHeight)
	}
	if c.DefaultTimeout <= 0 {
		return fmt.Errorf("config: default_timeout must be positive")
	}
	if c.NavigationTimeout <= 0 {
		return fmt.Errorf("config: navigation_timeout must be positive")
	}
	if c.SlowMo < 0 {
		return fmt.Errorf("config: slow_mo must not be negative")
	}
	return nil
}
