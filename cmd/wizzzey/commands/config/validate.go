package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wizzzeystore/wizzzey-api/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate the Wizzzey API configuration file.

Checks for syntax errors, missing required fields, and invalid values.

Examples:
  # Validate default config
  wizzzey config validate

  # Validate specific config file
  wizzzey config validate --config /etc/wizzzey/config.yaml`,
	RunE: runConfigValidate,
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	// Get config path from parent's persistent flag
	configPath, _ := cmd.Flags().GetString("config")

	// Load and validate configuration
	cfg, err := config.MustLoad(configPath)
	if err != nil {
		return err
	}

	// Determine path for display
	displayPath := configPath
	if displayPath == "" {
		displayPath = config.GetDefaultConfigPath()
	}

	// Additional validation checks
	var warnings []string

	// Check JWT secret is configured
	if !cfg.API.HasJWTSecret() {
		warnings = append(warnings, "JWT secret not configured - admin API authentication will fail")
	}

	// Print results
	fmt.Printf("Configuration file: %s\n", displayPath)
	fmt.Println("Validation: OK")

	if len(warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range warnings {
			fmt.Printf("  - %s\n", w)
		}
	}

	fmt.Printf("\nConfiguration summary:\n")
	fmt.Printf("  Database type:    %s\n", cfg.Database.Type)
	fmt.Printf("  API port:         %d\n", cfg.API.Port)
	fmt.Printf("  Log level:        %s\n", cfg.Logging.Level)
	fmt.Printf("  Uploads backend:  %s\n", cfg.Uploads.Backend)
	fmt.Printf("  Cleanup schedule: %s\n", cfg.Cleanup.Schedule)

	return nil
}
