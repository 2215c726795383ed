package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swag_automation/internal/logging"
	"swag_automation/internal/pages"
)

func TestCheckoutStepOneLoads(t *testing.T) {
	checkout := startCheckout(t)
	assert.True(t, checkout.IsStepOneLoaded())
}

func TestCheckoutWithValidInformation(t *testing.T) {
	checkout := startCheckout(t)

	require.NoError(t, checkout.FillInformation(
		data.Checkout.FirstName, data.Checkout.LastName, data.Checkout.PostalCode))
	require.NoError(t, checkout.ContinueToOverview())

	assert.True(t, checkout.IsStepTwoLoaded())
}

func TestCheckoutErrorWhenFirstNameMissing(t *testing.T) {
	checkout := startCheckout(t)

	require.NoError(t, checkout.FillInformation("", data.Checkout.LastName, data.Checkout.PostalCode))
	require.NoError(t, checkout.ContinueToOverview())

	require.True(t, checkout.IsErrorDisplayed())
	msg, err := checkout.ErrorMessage()
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(msg), "first name")
}

func TestCheckoutErrorWhenLastNameMissing(t *testing.T) {
	checkout := startCheckout(t)

	require.NoError(t, checkout.FillInformation(data.Checkout.FirstName, "", data.Checkout.PostalCode))
	require.NoError(t, checkout.ContinueToOverview())

	require.True(t, checkout.IsErrorDisplayed())
	msg, err := checkout.ErrorMessage()
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(msg), "last name")
}

func TestCheckoutErrorWhenPostalCodeMissing(t *testing.T) {
	checkout := startCheckout(t)

	require.NoError(t, checkout.FillInformation(data.Checkout.FirstName, data.Checkout.LastName, ""))
	require.NoError(t, checkout.ContinueToOverview())

	require.True(t, checkout.IsErrorDisplayed())
	msg, err := checkout.ErrorMessage()
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(msg), "postal code")
}

func TestCheckoutOrderSummaryTotals(t *testing.T) {
	checkout := startCheckout(t)
	require.NoError(t, checkout.FillInformation(
		data.Checkout.FirstName, data.Checkout.LastName, data.Checkout.PostalCode))
	require.NoError(t, checkout.ContinueToOverview())
	require.True(t, checkout.IsStepTwoLoaded())

	summary, err := checkout.OrderSummary()
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Greater(t, summary.ItemTotal, 0.0)
	assert.Greater(t, summary.Tax, 0.0)
	assert.InDelta(t, summary.ItemTotal+summary.Tax, summary.Total, 0.001)
}

func TestCheckoutComplete(t *testing.T) {
	checkout := startCheckout(t)

	require.NoError(t, checkout.FillInformation(
		data.Checkout.FirstName, data.Checkout.LastName, data.Checkout.PostalCode))
	require.NoError(t, checkout.ContinueToOverview())
	require.NoError(t, checkout.FinishCheckout())

	assert.True(t, checkout.IsCheckoutComplete())
	header, err := checkout.ConfirmationHeader()
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(header), "thank you")
}

func TestCheckoutCancelReturnsToCart(t *testing.T) {
	checkout := startCheckout(t)

	require.NoError(t, checkout.Cancel())
	assert.Contains(t, checkout.CurrentURL(), "/cart.html")
}

func TestBackToProductsAfterCheckout(t *testing.T) {
	checkout := startCheckout(t)
	require.NoError(t, checkout.FillInformation(
		data.Checkout.FirstName, data.Checkout.LastName, data.Checkout.PostalCode))
	require.NoError(t, checkout.ContinueToOverview())
	require.NoError(t, checkout.FinishCheckout())
	require.True(t, checkout.IsCheckoutComplete())

	require.NoError(t, checkout.BackToProducts())

	inventory := pages.NewInventoryPage(checkout.Page(), cfg, logging.Get())
	assert.True(t, inventory.IsLoaded())
}

func TestFullPurchaseFlowForNamedProduct(t *testing.T) {
	inventory := loginAsStandard(t)
	backpack := data.Products["backpack"]
	require.NoError(t, inventory.AddProductToCart(backpack.Name))

	cart := openCart(t, inventory)
	require.Equal(t, 1, cart.ItemCount())
	item, err := cart.CartItem(backpack.Name)
	require.NoError(t, err)
	require.NotNil(t, item)
	require.Equal(t, backpack.Price, item.Price)

	require.NoError(t, cart.ProceedToCheckout())
	checkout := pages.NewCheckoutPage(cart.Page(), cfg, logging.Get())
	require.NoError(t, checkout.FillInformation(
		data.Checkout.FirstName, data.Checkout.LastName, data.Checkout.PostalCode))
	require.NoError(t, checkout.ContinueToOverview())

	summary, err := checkout.OrderSummary()
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, backpack.Price, summary.ItemTotal)

	require.NoError(t, checkout.FinishCheckout())
	assert.True(t, checkout.IsCheckoutComplete())
}
