package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tikey/worlds/pkg/app"
	"github.com/tikey/worlds/pkg/config"
)

var rootCmd = &cobra.Command{
	Use:   "worlds",
	Short: "Browse and download the worlds JSON catalog",
	Long:  "Browse, filter and download worlds from a remote JSON catalog with a TUI and CLI",
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		cfg, err := loadSettings(cmd)
		cobra.CheckErr(err)

		a := app.NewApp(cfg)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("index", "", "Index URL of the catalog (overrides config)")
	rootCmd.PersistentFlags().String("base", "", "Base URL for relative paths (overrides config)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSettings reads the persisted settings and applies flag overrides.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if v, _ := cmd.Flags().GetString("index"); v != "" {
		cfg.IndexURL = v
	}
	if v, _ := cmd.Flags().GetString("base"); v != "" {
		cfg.BaseURL = v
	}
	return cfg, nil
}
