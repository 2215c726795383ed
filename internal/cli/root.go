package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"swag_automation/internal/config"
	"swag_automation/internal/logging"
)

// NewRootCommand builds the swagqa command tree. Flags override the
// environment before the configuration is loaded, so the rest of the suite
// only ever sees the configuration provider.
func NewRootCommand() *cobra.Command {
	var (
		headless bool
		browser  string
		slowMo   int
		baseURL  string
	)

	root := &cobra.Command{
		Use:   "swagqa",
		Short: "UI automation suite for the Swag Labs sample shop",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("headless") {
				os.Setenv("HEADLESS", strconv.FormatBool(headless))
			}
			if cmd.Flags().Changed("browser") {
				os.Setenv("BROWSER", browser)
			}
			if cmd.Flags().Changed("slow-mo") {
				os.Setenv("SLOW_MO", strconv.Itoa(slowMo))
			}
			if cmd.Flags().Changed("base-url") {
				os.Setenv("BASE_URL", baseURL)
			}
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&headless, "headless", true, "run the browser headless")
	root.PersistentFlags().StringVar(&browser, "browser", "chromium", "browser engine (chromium|firefox|webkit)")
	root.PersistentFlags().IntVar(&slowMo, "slow-mo", 0, "slow down every operation by this many milliseconds")
	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "application base URL")

	root.AddCommand(newInstallCommand())
	root.AddCommand(newSmokeCommand())
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Initialize(cfg)
	return cfg, nil
}
