package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/tikey/worlds/pkg/services"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the tags used in the catalog",
	Long:  "Fetch the catalog and display every distinct tag with the number of worlds carrying it",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadSettings(cmd)
		cobra.CheckErr(err)

		log.Info("fetching catalog", "url", cfg.IndexURL)
		entries, err := services.NewFetcher().FetchCatalog(cfg.IndexURL, cfg.BaseURL)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("fetch failed: %w", err))
		}

		tags := services.Tags(entries)
		if len(tags) == 0 {
			fmt.Println("No tags in catalog.")
			return
		}

		counts := make(map[string]int)
		for _, entry := range entries {
			seen := make(map[string]bool)
			for _, tag := range entry.Tags {
				if !seen[tag] {
					seen[tag] = true
					counts[tag]++
				}
			}
		}

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			StyleFunc(tableStyleFunc).
			Headers("Tag", "Worlds")

		for _, tag := range tags {
			t.Row(tag, fmt.Sprintf("%d", counts[tag]))
		}

		fmt.Println(t)
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
