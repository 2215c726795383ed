package pages

import (
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"swag_automation/internal/config"
	"swag_automation/internal/elements"
)

// base is the common contract behind every page object: one page handle, the
// run configuration, an element handler, and this screen's URL path segment.
// Concrete pages embed it and speak through its delegating methods.
type base struct {
	page playwright.Page
	cfg  *config.Config
	el   *elements.Handler
	log  *zap.Logger
	name string
	path string
}

func newBase(page playwright.Page, cfg *config.Config, logger *zap.Logger, name, path string) base {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named(name)
	return base{
		page: page,
		cfg:  cfg,
		el:   elements.New(page, cfg, logger, true),
		log:  logger,
		name: name,
		path: path,
	}
}

// Page exposes the underlying page handle. Intended for tests that need to
// probe a well-known element directly, and for wrapping the same handle into
// the next screen's page object after navigation.
func (b *base) Page() playwright.Page { return b.page }

// URL is the base URL joined with this screen's fixed path segment. An empty
// segment means the application root.
func (b *base) URL() string { return b.cfg.BaseURL + b.path }

// CurrentURL is the live URL of the page handle, which may differ from URL
// after an in-app navigation.
func (b *base) CurrentURL() string { return b.page.URL() }

// Navigate loads this page's URL.
func (b *base) Navigate() error {
	b.log.Info("navigating", zap.String("url", b.URL()))
	_, err := b.page.Goto(b.URL(), playwright.PageGotoOptions{
		Timeout: playwright.Float(float64(b.cfg.NavigationTimeout.Milliseconds())),
	})
	return err
}

// WaitForLoadState blocks until the page reaches the network-idle load state.
func (b *base) WaitForLoadState() error {
	return b.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	})
}

// Element handler delegation, so concrete pages call p.Click(...) directly.

func (b *base) Click(selector string, opts ...elements.ClickOptions) error {
	return b.el.Click(selector, opts...)
}

func (b *base) Fill(selector, value string, opts ...elements.FillOptions) error {
	return b.el.Fill(selector, value, opts...)
}

func (b *base) Text(selector string, timeout ...time.Duration) (string, error) {
	return b.el.Text(selector, timeout...)
}

func (b *base) Attribute(selector, name string, timeout ...time.Duration) (string, error) {
	return b.el.Attribute(selector, name, timeout...)
}

func (b *base) InputValue(selector string, timeout ...time.Duration) (string, error) {
	return b.el.InputValue(selector, timeout...)
}

func (b *base) IsVisible(selector string, timeout ...time.Duration) bool {
	return b.el.IsVisible(selector, timeout...)
}

func (b *base) IsEnabled(selector string, timeout ...time.Duration) bool {
	return b.el.IsEnabled(selector, timeout...)
}

func (b *base) WaitForVisible(selector string, timeout ...time.Duration) error {
	return b.el.WaitForVisible(selector, timeout...)
}

func (b *base) WaitForHidden(selector string, timeout ...time.Duration) error {
	return b.el.WaitForHidden(selector, timeout...)
}

func (b *base) SelectOptionIn(selector string, opt elements.SelectOption) error {
	return b.el.SelectOptionIn(selector, opt)
}

func (b *base) AllTexts(selector string) []string {
	return b.el.AllTexts(selector)
}

func (b *base) Count(selector string) int {
	return b.el.Count(selector)
}
