package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/z1gc/gorime/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gorime configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config directory",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		cmd.Println(dir)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.EnsureDirectories(); err != nil {
			return err
		}
		dir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		path := filepath.Join(dir, "config.toml")
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
		if err := os.WriteFile(path, []byte(config.DefaultTOML()), 0o644); err != nil {
			return fmt.Errorf("write config file: %w", err)
		}
		cmd.Printf("wrote %s\n", path)
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for the config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.EnsureDirectories(); err != nil {
			return err
		}
		path, err := config.GenerateSchemaFile()
		if err != nil {
			return err
		}
		cmd.Printf("wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd, configInitCmd, configSchemaCmd)
	rootCmd.AddCommand(configCmd)
}
