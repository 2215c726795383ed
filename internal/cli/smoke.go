package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"swag_automation/internal/browser"
	"swag_automation/internal/logging"
	"swag_automation/internal/pages"
	"swag_automation/internal/testdata"
)

// newSmokeCommand wires a single end-to-end purchase: login, add one product,
// check out, confirm. It exists so the suite's health can be verified outside
// the test runner.
func newSmokeCommand() *cobra.Command {
	var (
		dataPath string
		product  string
	)

	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Run a single login-to-checkout flow against the shop",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			defer logging.Sync()
			log := logging.Get()

			data, err := testdata.Load(dataPath)
			if err != nil {
				return err
			}
			username, err := data.User("standard")
			if err != nil {
				return err
			}

			session, err := browser.Launch(cfg, log)
			if err != nil {
				return err
			}
			defer session.Close()

			page, err := session.NewPage()
			if err != nil {
				return err
			}

			login := pages.NewLoginPage(page, cfg, log)
			if err := login.Navigate(); err != nil {
				return err
			}
			if err := login.Login(username, data.Credentials.Password); err != nil {
				return err
			}

			inventory := pages.NewInventoryPage(page, cfg, log)
			if !inventory.IsLoaded() {
				return fmt.Errorf("inventory did not load after login")
			}
			if err := inventory.AddProductToCart(product); err != nil {
				return err
			}
			if err := inventory.GoToCart(); err != nil {
				return err
			}

			cart := pages.NewCartPage(page, cfg, log)
			if !cart.ContainsItem(product) {
				return fmt.Errorf("%s not found in cart", product)
			}
			if err := cart.ProceedToCheckout(); err != nil {
				return err
			}

			checkout := pages.NewCheckoutPage(page, cfg, log)
			if err := checkout.FillInformation(data.Checkout.FirstName, data.Checkout.LastName, data.Checkout.PostalCode); err != nil {
				return err
			}
			if err := checkout.ContinueToOverview(); err != nil {
				return err
			}
			if err := checkout.FinishCheckout(); err != nil {
				return err
			}

			header, err := checkout.ConfirmationHeader()
			if err != nil {
				return err
			}
			if !checkout.IsCheckoutComplete() || !strings.Contains(strings.ToLower(header), "thank you") {
				return fmt.Errorf("checkout did not complete, header %q", header)
			}

			log.Info("smoke flow passed", zap.String("product", product))
			fmt.Fprintln(cmd.OutOrStdout(), "smoke flow passed")
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "data/test_data.yaml", "test data file")
	cmd.Flags().StringVar(&product, "product", "Sauce Labs Backpack", "product to purchase")
	return cmd
}
