package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"swag_automation/internal/config"
)

// Session owns one playwright driver, browser and context for the duration of
// a test run. Pages created from it are handed to page objects one per test;
// the session itself is never shared between concurrent page operations.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	cfg     *config.Config
	log     *zap.Logger
}

// Launch starts the driver and opens a browser context configured from cfg:
// engine, headless mode, slow-motion delay, viewport and default timeouts.
func Launch(cfg *config.Config, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("browser")

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	launchOptions := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.SlowMo > 0 {
		launchOptions.SlowMo = playwright.Float(float64(cfg.SlowMo.Milliseconds()))
	}

	var browserType playwright.BrowserType
	switch cfg.Browser {
	case config.Firefox:
		browserType = pw.Firefox
	case config.WebKit:
		browserType = pw.WebKit
	default:
		browserType = pw.Chromium
		launchOptions.Args = []string{"--no-sandbox", "--disable-dev-shm-usage"}
	}

	logger.Info("launching browser",
		zap.String("engine", string(cfg.Browser)),
		zap.Bool("headless", cfg.Headless))

	b, err := browserType.Launch(launchOptions)
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	context, err := b.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  cfg.ViewportWidth,
			Height: cfg.ViewportHeight,
		},
		IgnoreHttpsErrors: playwright.Bool(true),
	})
	if err != nil {
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	context.SetDefaultTimeout(float64(cfg.DefaultTimeout.Milliseconds()))
	context.SetDefaultNavigationTimeout(float64(cfg.NavigationTimeout.Milliseconds()))

	return &Session{
		pw:      pw,
		browser: b,
		context: context,
		cfg:     cfg,
		log:     logger,
	}, nil
}

// NewPage opens a fresh page in the session's context.
func (s *Session) NewPage() (playwright.Page, error) {
	page, err := s.context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return page, nil
}

// Close tears down the context, browser and driver. Safe to call once at the
// end of the run.
func (s *Session) Close() error {
	var closeErr error
	if s.context != nil {
		if err := s.context.Close(); err != nil {
			closeErr = fmt.Errorf("failed to close context: %w", err)
		}
		s.context = nil
	}
	if s.browser != nil {
		if err := s.browser.Close(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("failed to close browser: %w", err)
		}
		s.browser = nil
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("failed to stop playwright: %w", err)
		}
		s.pw = nil
	}
	return closeErr
}
