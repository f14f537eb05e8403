package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quill-labs/tally-cli/internal/core/domain"
)

var (
	catalogCategory string
	catalogJSON     bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the product, menu and activity catalog",
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog by keywords",
	Long: `Performs a case-insensitive search across item names, categories,
brands, descriptions and keywords. Every term must match; plural terms
also match their singular form.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogSearch,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a single catalog item",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog items",
	RunE:  runCatalogList,
}

func init() {
	catalogSearchCmd.Flags().BoolVar(&catalogJSON, "json", false, "output results as JSON")
	catalogListCmd.Flags().StringVarP(&catalogCategory, "category", "c", "", "filter by category")
	catalogListCmd.Flags().BoolVar(&catalogJSON, "json", false, "output results as JSON")
	catalogCmd.AddCommand(catalogSearchCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	items, err := catalogService.Search(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	return outputItems(cmd, items)
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	item, err := catalogService.Find(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	cmd.Printf("%s (%s)\n", item.Name, item.ID)
	cmd.Printf("  Category: %s\n", item.Category)
	if item.Brand != "" {
		cmd.Printf("  Brand:    %s\n", item.Brand)
	}
	cmd.Printf("  Price:    %s\n", item.Price.StringFixed(2))
	if item.Unit != "" {
		cmd.Printf("  Unit:     %s\n", item.Unit)
	}
	if item.Description != "" {
		cmd.Printf("  %s\n", item.Description)
	}
	return nil
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	items, err := catalogService.List(cmd.Context(), catalogCategory)
	if err != nil {
		return err
	}
	return outputItems(cmd, items)
}

func outputItems(cmd *cobra.Command, items []domain.CatalogItem) error {
	if catalogJSON {
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal items: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(items) == 0 {
		cmd.Println("No items found.")
		return nil
	}
	for i := range items {
		cmd.Printf("  %-14s %-24s %8s  %s\n",
			items[i].ID, items[i].Name, items[i].Price.StringFixed(2), items[i].Category)
	}
	return nil
}
