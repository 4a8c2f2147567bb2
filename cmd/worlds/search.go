package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/tikey/worlds/pkg/services"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog",
	Long:  "Fetch the catalog and display the worlds matching a free-text query and an optional tag",
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")
		tag, _ := cmd.Flags().GetString("tag")

		cfg, err := loadSettings(cmd)
		cobra.CheckErr(err)

		log.Info("fetching catalog", "url", cfg.IndexURL)
		entries, err := services.NewFetcher().FetchCatalog(cfg.IndexURL, cfg.BaseURL)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("fetch failed: %w", err))
		}

		visible := services.Filter(entries, query, tag)
		if len(visible) == 0 {
			fmt.Println("No results found.")
			return
		}

		printEntries(visible)
	},
}

func init() {
	searchCmd.Flags().StringP("tag", "t", "", "Only show worlds carrying this tag")

	rootCmd.AddCommand(searchCmd)
}
