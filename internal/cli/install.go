package cli

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/spf13/cobra"
)

func newInstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Download the browser engines playwright drives",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := playwright.Install(); err != nil {
				return fmt.Errorf("failed to install browsers: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "browsers installed")
			return nil
		},
	}
}
