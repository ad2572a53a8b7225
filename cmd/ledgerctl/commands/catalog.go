package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"salamatlab/internal/domain/entities"
	"salamatlab/internal/infrastructure/catalog"
	"salamatlab/internal/usecase"
)

func catalogCmd() *cobra.Command {
	var (
		category string
		sampling bool
	)
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print checkup categories or sampling packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			if category != "" && !entities.PackageCategoryKey(category).Valid() {
				return fmt.Errorf("%w: %s", usecase.ErrUnknownCategoryKey, category)
			}
			uc := usecase.NewCatalogUseCase(catalog.NewStaticCatalog())
			out := cmd.OutOrStdout()

			if sampling {
				for _, p := range uc.SamplingPackages() {
					fmt.Fprintf(out, "%s\t%s\t%s\n", p.ID, p.Title, usecase.FormatPrice(p.Price))
				}
				return nil
			}

			for _, c := range uc.Categories() {
				if category != "" && string(c.Key) != category {
					continue
				}
				pkgs, err := uc.Packages(c.Key)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "[%s] %s\n", c.Key, c.Title)
				for _, p := range pkgs {
					fmt.Fprintf(out, "  %s\t%s\t%s\n", p.ID, p.Title, usecase.FormatPrice(p.Price))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only print this category (general, specialized, women, cancer)")
	cmd.Flags().BoolVar(&sampling, "sampling", false, "print the home-sampling packages instead")
	return cmd
}
