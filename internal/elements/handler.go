package elements

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"swag_automation/internal/config"
)

// Handler wraps a single playwright page with retry-aware, logged element
// operations. Selectors are resolved fresh on every call, so results always
// reflect the current DOM state. Operations that presume an actionable element
// (Click, Fill, Text, ...) return a *TimeoutError when the element does not
// reach the expected state in time; boolean probes (IsVisible, IsEnabled,
// Count, AllTexts) never fail, they report the negative outcome instead.
type Handler struct {
	page           playwright.Page
	cfg            *config.Config
	log            *zap.Logger
	captureOnError bool
}

// New creates a handler for the given page. captureOnError enables writing a
// failure screenshot into the configured screenshot directory whenever a
// raising operation times out.
func New(page playwright.Page, cfg *config.Config, logger *zap.Logger, captureOnError bool) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		page:           page,
		cfg:            cfg,
		log:            logger,
		captureOnError: captureOnError,
	}
}

// Page exposes the underlying page handle for operations the handler does not
// model, such as nested locator lookups.
func (h *Handler) Page() playwright.Page { return h.page }

// ClickOptions tunes a single Click call. The zero value means: default
// timeout, actionability checks on, one click.
type ClickOptions struct {
	Timeout    time.Duration
	Force      bool
	ClickCount int
}

// FillOptions tunes a single Fill call. By default the existing value is
// cleared before typing.
type FillOptions struct {
	Timeout   time.Duration
	KeepValue bool
}

// SelectOption names a dropdown option by exactly one of value, label or
// index.
type SelectOption struct {
	Value   *string
	Label   *string
	Index   *int
	Timeout time.Duration
}

func (o SelectOption) values() (playwright.SelectOptionValues, error) {
	var v playwright.SelectOptionValues
	set := 0
	if o.Value != nil {
		set++
		v.Values = &[]string{*o.Value}
	}
	if o.Label != nil {
		set++
		v.Labels = &[]string{*o.Label}
	}
	if o.Index != nil {
		set++
		v.Indexes = &[]int{*o.Index}
	}
	if set != 1 {
		return v, ErrOptionSpec
	}
	return v, nil
}

// ms converts a per-call timeout to driver milliseconds, substituting the
// process-wide default when the caller did not override it.
func (h *Handler) ms(d time.Duration) *float64 {
	if d <= 0 {
		d = h.cfg.DefaultTimeout
	}
	return playwright.Float(float64(d.Milliseconds()))
}

func first(timeouts []time.Duration) time.Duration {
	if len(timeouts) > 0 {
		return timeouts[0]
	}
	return 0
}

// run executes one interaction with uniform logging and failure handling.
// On error it captures a diagnostic screenshot (when enabled) and wraps the
// driver error so the action and selector travel with it. Capture failures
// are logged and swallowed; they never replace the original error.
func (h *Handler) run(action, selector string, fn func() error) error {
	h.log.Debug(action, zap.String("selector", selector))
	err := fn()
	if err == nil {
		return nil
	}
	h.log.Error("interaction failed",
		zap.String("action", action),
		zap.String("selector", selector),
		zap.Error(err))
	if h.captureOnError {
		h.capture(action, selector)
	}
	return &TimeoutError{Action: action, Selector: selector, Err: err}
}

var selectorSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]+`)

func sanitizeSelector(s string) string {
	s = selectorSanitizer.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 60 {
		s = s[:60]
	}
	if s == "" {
		s = "selector"
	}
	return s
}

// screenshotName builds the deterministic diagnostic file name
// error_{action}_{sanitized-selector}_{unix-timestamp}.png.
func screenshotName(action, selector string, now time.Time) string {
	return fmt.Sprintf("error_%s_%s_%d.png", action, sanitizeSelector(selector), now.Unix())
}

func (h *Handler) capture(action, selector string) {
	if err := os.MkdirAll(h.cfg.ScreenshotDir, 0o755); err != nil {
		h.log.Warn("failed to create screenshot directory", zap.Error(err))
		return
	}
	path := filepath.Join(h.cfg.ScreenshotDir, screenshotName(action, selector, time.Now()))
	if _, err := h.page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(path),
	}); err != nil {
		h.log.Warn("failed to capture screenshot", zap.String("path", path), zap.Error(err))
		return
	}
	h.log.Debug("saved failure screenshot", zap.String("path", path))
}

// Click resolves the selector and performs a pointer click once the element
// is actionable.
func (h *Handler) Click(selector string, opts ...ClickOptions) error {
	var o ClickOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	return h.run("click", selector, func() error {
		co := playwright.LocatorClickOptions{Timeout: h.ms(o.Timeout)}
		if o.Force {
			co.Force = playwright.Bool(true)
		}
		if o.ClickCount > 1 {
			co.ClickCount = playwright.Int(o.ClickCount)
		}
		return h.page.Locator(selector).Click(co)
	})
}

// Fill types the value into an input-like element, clearing the current value
// first unless KeepValue is set.
func (h *Handler) Fill(selector, value string, opts ...FillOptions) error {
	var o FillOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	return h.run("fill", selector, func() error {
		locator := h.page.Locator(selector)
		if !o.KeepValue {
			if err := locator.Clear(playwright.LocatorClearOptions{Timeout: h.ms(o.Timeout)}); err != nil {
				return err
			}
		}
		return locator.Fill(value, playwright.LocatorFillOptions{Timeout: h.ms(o.Timeout)})
	})
}

// Text returns the text content of the first matching element, or the empty
// string when the element has no text.
func (h *Handler) Text(selector string, timeout ...time.Duration) (string, error) {
	var text string
	err := h.run("get_text", selector, func() error {
		s, err := h.page.Locator(selector).TextContent(playwright.LocatorTextContentOptions{
			Timeout: h.ms(first(timeout)),
		})
		if err != nil {
			return err
		}
		text = s
		return nil
	})
	return text, err
}

// Attribute returns the named attribute of the first matching element. An
// element without the attribute yields an empty string, not an error.
func (h *Handler) Attribute(selector, name string, timeout ...time.Duration) (string, error) {
	var value string
	err := h.run("get_attribute", selector, func() error {
		v, err := h.page.Locator(selector).GetAttribute(name, playwright.LocatorGetAttributeOptions{
			Timeout: h.ms(first(timeout)),
		})
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	return value, err
}

// InputValue returns the current value of an input-like element.
func (h *Handler) InputValue(selector string, timeout ...time.Duration) (string, error) {
	var value string
	err := h.run("get_input_value", selector, func() error {
		v, err := h.page.Locator(selector).InputValue(playwright.LocatorInputValueOptions{
			Timeout: h.ms(first(timeout)),
		})
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	return value, err
}

// IsVisible reports whether the first matching element is visible. Without a
// timeout it checks the current DOM state; with one it waits up to that long
// for the element to become visible. Either way it never fails: an element
// that cannot be confirmed counts as not visible.
func (h *Handler) IsVisible(selector string, timeout ...time.Duration) bool {
	if t := first(timeout); t > 0 {
		err := h.page.Locator(selector).WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateVisible,
			Timeout: playwright.Float(float64(t.Milliseconds())),
		})
		return err == nil
	}
	visible, err := h.page.Locator(selector).IsVisible()
	if err != nil {
		return false
	}
	return visible
}

// IsEnabled reports whether the first matching element is enabled, treating
// "could not confirm" as false.
func (h *Handler) IsEnabled(selector string, timeout ...time.Duration) bool {
	o := playwright.LocatorIsEnabledOptions{}
	if t := first(timeout); t > 0 {
		o.Timeout = playwright.Float(float64(t.Milliseconds()))
	}
	enabled, err := h.page.Locator(selector).IsEnabled(o)
	if err != nil {
		return false
	}
	return enabled
}

// WaitForVisible blocks until the element is visible or the timeout elapses.
func (h *Handler) WaitForVisible(selector string, timeout ...time.Duration) error {
	return h.run("wait_for_visible", selector, func() error {
		return h.page.Locator(selector).WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateVisible,
			Timeout: h.ms(first(timeout)),
		})
	})
}

// WaitForHidden blocks until the element is hidden or detached, or the
// timeout elapses.
func (h *Handler) WaitForHidden(selector string, timeout ...time.Duration) error {
	return h.run("wait_for_hidden", selector, func() error {
		return h.page.Locator(selector).WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateHidden,
			Timeout: h.ms(first(timeout)),
		})
	})
}

// SelectOptionIn chooses a dropdown option by the single discriminator set in
// opt. ErrOptionSpec is returned synchronously when the discriminator rule is
// violated.
func (h *Handler) SelectOptionIn(selector string, opt SelectOption) error {
	vals, err := opt.values()
	if err != nil {
		return err
	}
	return h.run("select_option", selector, func() error {
		_, err := h.page.Locator(selector).SelectOption(vals, playwright.LocatorSelectOptionOptions{
			Timeout: h.ms(opt.Timeout),
		})
		return err
	})
}

// AllTexts returns the text content of every matching element in document
// order. No matches yields an empty slice, never an error.
func (h *Handler) AllTexts(selector string) []string {
	texts, err := h.page.Locator(selector).AllTextContents()
	if err != nil {
		h.log.Debug("get_all_texts failed", zap.String("selector", selector), zap.Error(err))
		return nil
	}
	return texts
}

// Count returns the number of currently matching elements, zero when the
// count cannot be determined.
func (h *Handler) Count(selector string) int {
	n, err := h.page.Locator(selector).Count()
	if err != nil {
		h.log.Debug("count failed", zap.String("selector", selector), zap.Error(err))
		return 0
	}
	return n
}
