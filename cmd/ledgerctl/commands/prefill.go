package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"salamatlab/internal/domain/entities"
	"salamatlab/internal/usecase"
)

// prefill: read a profile JSON document and print the seeded field bag.
func prefillCmd() *cobra.Command {
	var (
		profilePath string
		flow        string
	)
	cmd := &cobra.Command{
		Use:   "prefill",
		Short: "Show the fields a profile seeds into a wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			typ := entities.RequestType(flow)
			if !typ.Valid() {
				return fmt.Errorf("%w: %s", usecase.ErrUnknownFlow, flow)
			}

			raw, err := os.ReadFile(profilePath)
			if err != nil {
				return err
			}
			var profile entities.UserProfile
			if err := json.Unmarshal(raw, &profile); err != nil {
				return fmt.Errorf("decode profile: %w", err)
			}

			fields := usecase.NewProfilePrefiller().Prefill(typ, &profile)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(fields)
		},
	}
	cmd.Flags().StringVar(&profilePath, "profile", "", "path to a profile JSON document")
	cmd.Flags().StringVar(&flow, "flow", string(entities.RequestTypeCheckup), "checkup or sampling")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}
