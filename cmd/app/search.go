package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wichananm65/kg-market-backend/internal/config"
	"github.com/wichananm65/kg-market-backend/internal/logging"
	"github.com/wichananm65/kg-market-backend/internal/product"
)

func newSearchCmd() *cobra.Command {
	var (
		category string
		minPrice int
		maxPrice int
		sizes    []string
		brands   []string
	)

	cmd := &cobra.Command{
		Use:   "search [text]",
		Short: "Query the catalog from the terminal",
		Long: "Run the catalog query engine against the configured catalog. " +
			"Text matches name, category or brand; flags narrow the result.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var criteria product.FilterCriteria
			if cmd.Flags().Changed("category") && category != product.AllCategories {
				criteria.Category = &category
			}
			if cmd.Flags().Changed("min-price") {
				criteria.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max-price") {
				criteria.MaxPrice = &maxPrice
			}
			criteria.Sizes = sizes
			criteria.Brands = brands

			text := ""
			if len(args) == 1 {
				text = args[0]
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := openDB(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			if db != nil {
				defer db.Close()
			}

			svc := product.NewService(newRepositories(db).products, logging.Discard())
			results, err := svc.Search(text, criteria)
			if err != nil {
				return err
			}
			printProducts(cmd, results)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "exact category")
	cmd.Flags().IntVar(&minPrice, "min-price", 0, "lowest price, inclusive")
	cmd.Flags().IntVar(&maxPrice, "max-price", 0, "highest price, inclusive")
	cmd.Flags().StringSliceVar(&sizes, "sizes", nil, "sizes, any match")
	cmd.Flags().StringSliceVar(&brands, "brands", nil, "brands")
	return cmd
}

func printProducts(cmd *cobra.Command, products []product.Product) {
	out := cmd.OutOrStdout()
	if len(products) == 0 {
		fmt.Fprintln(out, "no products found")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tBRAND\tCATEGORY")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", p.ID, p.Name, p.Price, p.Brand, p.Category)
	}
	w.Flush()
	fmt.Fprintf(out, "%d product(s)\n", len(products))
}
