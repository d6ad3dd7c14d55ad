package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jokarl/dataver/internal/config"
)

var forceFlag bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage dataver configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create starter .dataver.hcl configuration",
	Long: `Create a new .dataver.hcl configuration file in the current directory
with documented default settings.

The remote URL is read from the DATAVER_REMOTE_URL environment variable
so credentials-bearing URLs stay out of the repository.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Long: `Print the configuration after defaults and command-line overrides are
applied, in YAML.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite existing configuration file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	dir := dirFlag
	if dir == "" {
		dir = "."
	}
	configPath := filepath.Join(dir, config.FileNames[0])

	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		if !forceFlag {
			return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
		}
	}

	// Write the default configuration
	content := config.DefaultConfigHCL()
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configPath)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(requirements{})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if path := cfg.ConfigPath(); path != "" {
		fmt.Fprintf(w, "# loaded from %s\n", path)
	} else {
		fmt.Fprintln(w, "# no config file found, using defaults")
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
