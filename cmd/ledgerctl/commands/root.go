package commands

import (
	"github.com/spf13/cobra"

	"salamatlab/internal/config"
)

var cfg config.Config

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Inspect the lab catalog and request ledger",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	root.AddCommand(catalogCmd(), prefillCmd(), requestsCmd(), tokenCmd())
	return root
}
