package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/tikey/worlds/pkg/catalog"
	"github.com/tikey/worlds/pkg/services"
)

var downloadCmd = &cobra.Command{
	Use:   "download [title...]",
	Short: "Download worlds to disk",
	Long:  "Download the JSON payload (and optionally the preview image) of the selected worlds",
	Run: func(cmd *cobra.Command, args []string) {
		query, _ := cmd.Flags().GetString("query")
		tag, _ := cmd.Flags().GetString("tag")
		all, _ := cmd.Flags().GetBool("all")

		cfg, err := loadSettings(cmd)
		cobra.CheckErr(err)
		if v, _ := cmd.Flags().GetString("out"); v != "" {
			cfg.OutputDir = v
		}
		if cmd.Flags().Changed("preview") {
			cfg.WithPreview, _ = cmd.Flags().GetBool("preview")
		}

		log.Info("fetching catalog", "url", cfg.IndexURL)
		entries, err := services.NewFetcher().FetchCatalog(cfg.IndexURL, cfg.BaseURL)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("fetch failed: %w", err))
		}

		visible := services.Filter(entries, query, tag)

		var selected []catalog.Entry
		switch {
		case len(args) > 0:
			for _, title := range args {
				found := false
				for _, entry := range visible {
					if strings.EqualFold(entry.Title, title) {
						selected = append(selected, entry)
						found = true
					}
				}
				if !found {
					log.Warn("no world matches title", "title", title)
				}
			}
		case all:
			selected = visible
		default:
			cobra.CheckErr(fmt.Errorf("specify world titles or --all"))
		}

		if len(selected) == 0 {
			fmt.Println("Nothing to download.")
			return
		}

		log.Info("starting download",
			"worlds", len(selected), "out", cfg.OutputDir, "preview", cfg.WithPreview)

		downloader := services.NewDownloader()
		drained := make(chan struct{})
		go func() {
			defer close(drained)
			for progress := range downloader.GetProgressChannel() {
				if progress.Message != "" {
					log.Info(progress.Message)
				}
			}
		}()

		outcome, err := downloader.DownloadAll(selected, cfg.OutputDir, cfg.WithPreview)
		downloader.Close()
		<-drained

		if err != nil {
			cobra.CheckErr(fmt.Errorf("download failed after %d of %d: %w",
				outcome.Succeeded, len(selected), err))
		}

		fmt.Printf("Downloaded %d worlds to %s\n", outcome.Succeeded, cfg.OutputDir)
	},
}

func init() {
	downloadCmd.Flags().StringP("query", "q", "", "Only consider worlds matching this query")
	downloadCmd.Flags().StringP("tag", "t", "", "Only consider worlds carrying this tag")
	downloadCmd.Flags().BoolP("all", "a", false, "Download every matching world")
	downloadCmd.Flags().StringP("out", "o", "", "Destination directory (overrides config)")
	downloadCmd.Flags().Bool("preview", false, "Also download preview images (overrides config)")

	rootCmd.AddCommand(downloadCmd)
}
