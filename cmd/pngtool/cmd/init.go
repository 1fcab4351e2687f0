package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aexlab51/PNG-library/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a default configuration file for the serve command. Refuses
to overwrite an existing file.

Example:
  pngtool init
  pngtool init --config=./pngtool.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.DefaultConfigPath()
		}

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config file already exists: %s", configPath)
		}

		if err := config.SaveConfig(config.DefaultConfig(), configPath); err != nil {
			return fmt.Errorf("error writing config: %w", err)
		}
		cmd.Printf("Wrote default config to %s\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("config", "", "Path to write the config file")
}
