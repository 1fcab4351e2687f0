package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aexlab51/PNG-library/pkg/api"
	"github.com/aexlab51/PNG-library/pkg/config"
	"github.com/aexlab51/PNG-library/pkg/storage"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the inspection REST API server",
	Long: `Start the HTTP server that accepts uploaded PNG, MNG, and JNG files
and returns inspection reports. Reports can be persisted and fetched
later by ID.

Examples:
  pngtool serve --api-key=mysecretkey --port=8424
  pngtool serve --config=./pngtool.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		port, _ := cmd.Flags().GetInt("port")
		apiKey, _ := cmd.Flags().GetString("api-key")
		reportDir, _ := cmd.Flags().GetString("report-dir")

		cfg := config.DefaultConfig()
		if configPath != "" {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			cfg = loaded
		} else if _, err := os.Stat(config.DefaultConfigPath()); err == nil {
			loaded, err := config.LoadConfig(config.DefaultConfigPath())
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			cfg = loaded
		}

		// Flags override the config file.
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		if apiKey != "" {
			cfg.APIKey = apiKey
		}
		if reportDir != "" {
			cfg.ReportDir = reportDir
		}

		if cfg.APIKey == "" {
			return fmt.Errorf("an API key is required (--api-key or config file)")
		}

		if lvl, err := log.ParseLevel(cfg.Logging.Level); err == nil {
			log.SetLevel(lvl)
		}

		reports, err := storage.OpenReportStore(cfg.ReportDir)
		if err != nil {
			return fmt.Errorf("error opening report store: %w", err)
		}
		defer reports.Close()

		return api.StartServer(reports, api.ServerConfig{
			Bind:           cfg.Bind,
			Port:           cfg.Port,
			APIKey:         cfg.APIKey,
			MaxUploadBytes: cfg.Limits.MaxUploadBytes,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("config", "", "Path to a YAML config file")
	serveCmd.Flags().IntP("port", "p", 8424, "Port to listen on")
	serveCmd.Flags().String("api-key", "", "API key for authentication")
	serveCmd.Flags().String("report-dir", "", "Directory for the report store")
}
