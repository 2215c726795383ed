package pages

import (
	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"swag_automation/internal/config"
)

// OrderSummary is an immutable snapshot of the checkout overview totals.
type OrderSummary struct {
	ItemTotal float64
	Tax       float64
	Total     float64
}

// Checkout selectors, spanning the information, overview and complete steps.
const (
	checkoutFirstNameInput = "#first-name"
	checkoutLastNameInput  = "#last-name"
	checkoutPostalInput    = "#postal-code"
	checkoutCancelButton   = "#cancel"
	checkoutContinueButton = "#continue"

	checkoutFinishButton = "#finish"
	checkoutSummaryInfo  = ".summary_info"
	checkoutItemTotal    = ".summary_subtotal_label"
	checkoutTax          = ".summary_tax_label"
	checkoutTotal        = ".summary_total_label"

	checkoutBackHomeButton    = "#back-to-products"
	checkoutCompleteHeader    = ".complete-header"
	checkoutCompleteContainer = "#checkout_complete_container"

	checkoutErrorMessage = "[data-test='error']"
)

// CheckoutPage drives the three checkout steps: information, overview and
// completion. All three share one page object because the shop renders them
// under closely related URLs with disjoint element sets.
type CheckoutPage struct {
	base
}

func NewCheckoutPage(page playwright.Page, cfg *config.Config, logger *zap.Logger) *CheckoutPage {
	return &CheckoutPage{base: newBase(page, cfg, logger, "checkout", "/checkout-step-one.html")}
}

// FillInformation completes the step-one form fields.
func (p *CheckoutPage) FillInformation(firstName, lastName, postalCode string) error {
	p.log.Info("filling checkout information")
	if err := p.Fill(checkoutFirstNameInput, firstName); err != nil {
		return err
	}
	if err := p.Fill(checkoutLastNameInput, lastName); err != nil {
		return err
	}
	return p.Fill(checkoutPostalInput, postalCode)
}

// ContinueToOverview submits step one.
func (p *CheckoutPage) ContinueToOverview() error {
	return p.Click(checkoutContinueButton)
}

// FinishCheckout completes the order from the overview step.
func (p *CheckoutPage) FinishCheckout() error {
	p.log.Info("finishing checkout")
	return p.Click(checkoutFinishButton)
}

// OrderSummary parses the overview totals, or returns nil when the overview
// is not on screen.
func (p *CheckoutPage) OrderSummary() (*OrderSummary, error) {
	if !p.IsVisible(checkoutSummaryInfo) {
		return nil, nil
	}

	summary := &OrderSummary{}
	for _, field := range []struct {
		selector string
		dst      *float64
	}{
		{checkoutItemTotal, &summary.ItemTotal},
		{checkoutTax, &summary.Tax},
		{checkoutTotal, &summary.Total},
	} {
		text, err := p.Text(field.selector)
		if err != nil {
			return nil, err
		}
		v, err := ParsePrice(text)
		if err != nil {
			return nil, err
		}
		*field.dst = v
	}
	return summary, nil
}

// ConfirmationHeader returns the completion header text, or "" before the
// order is complete.
func (p *CheckoutPage) ConfirmationHeader() (string, error) {
	if !p.IsVisible(checkoutCompleteHeader) {
		return "", nil
	}
	return p.Text(checkoutCompleteHeader)
}

// BackToProducts returns to the catalog after a completed order.
func (p *CheckoutPage) BackToProducts() error {
	return p.Click(checkoutBackHomeButton)
}

// Cancel abandons the checkout at the current step.
func (p *CheckoutPage) Cancel() error {
	return p.Click(checkoutCancelButton)
}

// ErrorMessage returns the form validation error, or "" when none is shown.
func (p *CheckoutPage) ErrorMessage() (string, error) {
	if !p.IsErrorDisplayed() {
		return "", nil
	}
	return p.Text(checkoutErrorMessage)
}

func (p *CheckoutPage) IsErrorDisplayed() bool {
	return p.IsVisible(checkoutErrorMessage)
}

// IsStepOneLoaded reports whether the information form is on screen.
func (p *CheckoutPage) IsStepOneLoaded() bool {
	return p.IsVisible(checkoutFirstNameInput) &&
		p.IsVisible(checkoutContinueButton)
}

// IsStepTwoLoaded reports whether the overview is on screen.
func (p *CheckoutPage) IsStepTwoLoaded() bool {
	return p.IsVisible(checkoutSummaryInfo) &&
		p.IsVisible(checkoutFinishButton)
}

// IsCheckoutComplete reports whether the confirmation screen is on screen.
func (p *CheckoutPage) IsCheckoutComplete() bool {
	return p.IsVisible(checkoutCompleteContainer)
}
