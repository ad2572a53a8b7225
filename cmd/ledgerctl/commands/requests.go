package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"salamatlab/internal/adapter/persistence/kvstore"
	"salamatlab/internal/adapter/persistence/repository"
	"salamatlab/internal/usecase"
)

func requestsCmd() *cobra.Command {
	var (
		userID string
		filter usecase.DashboardFilter
	)
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "List a user's requests from the configured store",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			store, closeStore, err := kvstore.NewFromConfig(cmd.Context(), cfg.Store)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeStore(); cerr != nil && err == nil {
					err = cerr
				}
			}()

			dashboard := usecase.NewDashboardUseCase(repository.NewRequestLedgerRepository(store, cfg.Store.LedgerKeyPrefix), cfg.Dashboard.IncludeSamples)
			entries, err := dashboard.List(cmd.Context(), userID, filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				marker := ""
				if e.Sample {
					marker = " (sample)"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s%s\n",
					e.ID, e.Type, e.Status, e.CreatedAt.Format("2006-01-02 15:04"), e.Package.Title, marker)
			}
			fmt.Fprintf(out, "%d request(s)\n", len(entries))
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "owner user id")
	cmd.Flags().StringVar(&filter.Type, "type", "", "all, checkup or sampling")
	cmd.Flags().StringVar(&filter.Status, "status", "", "only this status")
	cmd.Flags().StringVarP(&filter.Query, "query", "q", "", "search over id, package title and status")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
