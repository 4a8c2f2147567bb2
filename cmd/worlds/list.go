package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/tikey/worlds/pkg/services"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all worlds in the catalog",
	Long:  "Fetch the remote catalog and display every world in a table",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadSettings(cmd)
		cobra.CheckErr(err)

		log.Info("fetching catalog", "url", cfg.IndexURL)
		entries, err := services.NewFetcher().FetchCatalog(cfg.IndexURL, cfg.BaseURL)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("fetch failed: %w", err))
		}

		if len(entries) == 0 {
			fmt.Println("Catalog is empty.")
			return
		}

		printEntries(entries)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
