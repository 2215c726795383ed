package e2e

import (
	"fmt"
	"os"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"swag_automation/internal/browser"
	"swag_automation/internal/config"
	"swag_automation/internal/logging"
	"swag_automation/internal/pages"
	"swag_automation/internal/testdata"
)

var (
	cfg     *config.Config
	session *browser.Session
	data    *testdata.Data
)

// TestMain launches one browser session for the whole suite. The suite drives
// the live Swag Labs shop, so it only runs when SWAGQA_E2E is set; plain unit
// CI skips it.
func TestMain(m *testing.M) {
	if os.Getenv("SWAGQA_E2E") == "" {
		fmt.Println("skipping e2e suite; set SWAGQA_E2E=1 to run it")
		return
	}
	os.Exit(run(m))
}

func run(m *testing.M) int {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logging.Initialize(cfg)
	defer logging.Sync()

	data, err = testdata.Load("../data/test_data.yaml")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	session, err = browser.Launch(cfg, logging.Get())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer session.Close()

	return m.Run()
}

// newPage opens a fresh page and ties its lifetime to the test.
func newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := session.NewPage()
	require.NoError(t, err, "failed to open page")
	t.Cleanup(func() { _ = page.Close() })
	return page
}

// openLoginPage navigates a fresh page to the login screen.
func openLoginPage(t *testing.T) *pages.LoginPage {
	t.Helper()
	login := pages.NewLoginPage(newPage(t), cfg, logging.Get())
	require.NoError(t, login.Navigate())
	return login
}

// loginAsStandard signs in with the standard user and returns the catalog,
// wrapped over the same page handle.
func loginAsStandard(t *testing.T) *pages.InventoryPage {
	t.Helper()
	login := openLoginPage(t)
	username, err := data.User("standard")
	require.NoError(t, err)
	require.NoError(t, login.Login(username, data.Credentials.Password))

	inventory := pages.NewInventoryPage(login.Page(), cfg, logging.Get())
	require.NoError(t, inventory.WaitForLoadState())
	return inventory
}

// openCart adds nothing, just moves from the catalog to the cart screen.
func openCart(t *testing.T, inventory *pages.InventoryPage) *pages.CartPage {
	t.Helper()
	require.NoError(t, inventory.GoToCart())
	return pages.NewCartPage(inventory.Page(), cfg, logging.Get())
}

// startCheckout puts one product in the cart and advances to checkout step
// one.
func startCheckout(t *testing.T) *pages.CheckoutPage {
	t.Helper()
	inventory := loginAsStandard(t)
	require.NoError(t, inventory.AddProductByIndex(0))
	cart := openCart(t, inventory)
	require.NoError(t, cart.ProceedToCheckout())
	return pages.NewCheckoutPage(cart.Page(), cfg, logging.Get())
}
