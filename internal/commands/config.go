package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"flexzone/internal/config"

	"github.com/spf13/cobra"
)

var (
	// Variables to hold flag values
	serverURL    string
	logLevel     string
	otlpEndpoint string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage FlexZone configuration",
	Long: `View and update FlexZone configuration settings.

FLEXZONE_SERVER_URL, FLEXZONE_LOG_LEVEL, FLEXZONE_LOG_CONSOLE and
FLEXZONE_OTLP_ENDPOINT override the file for a single run.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get configuration value",
	Long:  "Display specific configuration value or all configuration, including environment overrides",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := globalConfig

		// If no argument is provided, show all config
		if len(args) == 0 {
			fmt.Println("Current configuration:")
			fmt.Printf("Server URL: %s\n", cfg.ServerURL)
			fmt.Printf("Log Level: %s\n", cfg.LogLevel)
			if cfg.Email != "" {
				fmt.Printf("Email: %s\n", cfg.Email)
			}
			if cfg.OTLPEndpoint != "" {
				fmt.Printf("OTLP Endpoint: %s\n", cfg.OTLPEndpoint)
			}
			return nil
		}

		// Show specific config value
		switch args[0] {
		case "server-url":
			fmt.Println(cfg.ServerURL)
		case "email":
			fmt.Println(cfg.Email)
		case "log-level":
			fmt.Println(cfg.LogLevel)
		case "log-console":
			fmt.Println(strconv.FormatBool(cfg.LogConsole))
		case "otlp-endpoint":
			fmt.Println(cfg.OTLPEndpoint)
		default:
			return fmt.Errorf("unknown configuration key: %s", args[0])
		}

		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	Long:  "Update configuration settings like the backend server URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// Update configuration based on provided flags
		configUpdated := false

		if serverURL != "" {
			oldURL := cfg.ServerURL
			cfg.ServerURL = serverURL
			fmt.Printf("Server URL updated: %s -> %s\n", oldURL, serverURL)
			configUpdated = true
		}

		if logLevel != "" {
			cfg.LogLevel = logLevel
			fmt.Printf("Log level updated: %s\n", logLevel)
			configUpdated = true
		}

		if cmd.Flags().Changed("otlp-endpoint") {
			cfg.OTLPEndpoint = otlpEndpoint
			fmt.Printf("OTLP endpoint updated: %q\n", otlpEndpoint)
			configUpdated = true
		}

		// Save configuration if it was updated
		if configUpdated {
			if err := config.SaveGlobalConfig(cfg); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			fmt.Println("Configuration updated successfully.")
		} else {
			fmt.Println("No changes were made to the configuration.")
		}

		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long:  "Create a new configuration file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.GetGlobalConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}

		// Check if config file exists
		if _, err := os.Stat(configPath); err == nil {
			fmt.Println("Configuration file already exists.")
			fmt.Println("Use 'flexzone config set' to modify existing configuration.")
			return nil
		}

		// Create default configuration
		cfg := &config.Config{
			ServerURL: config.DefaultServerURL,
			LogLevel:  "info",
		}

		// Override defaults with provided flags
		if serverURL != "" {
			cfg.ServerURL = serverURL
		}

		if err := config.SaveGlobalConfig(cfg); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}

		fmt.Println("Configuration initialized successfully.")
		fmt.Printf("Configuration file created at: %s\n", configPath)
		return nil
	},
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show configuration file paths",
	Long:  "Display paths to the configuration, session and log files",
	RunE: func(cmd *cobra.Command, args []string) error {
		globalConfigDir, err := config.GetGlobalConfigDir()
		if err != nil {
			return err
		}
		session, err := openSession()
		if err != nil {
			return err
		}

		paths := []struct {
			label string
			path  string
		}{
			{"Config file", filepath.Join(globalConfigDir, "config.json")},
			{"Auth token", session.TokenFile},
			{"Member ID", session.MemberFile},
			{"Profile snapshot", session.ProfileFile},
			{"Log file", filepath.Join(globalConfigDir, "logs", "flexzone.log")},
		}

		fmt.Println("Config paths:")
		fmt.Printf("- Config directory: %s\n", globalConfigDir)
		for _, p := range paths {
			fmt.Printf("- %s: %s\n", p.label, p.path)
		}

		// Check existence
		fmt.Println("\nExistence status:")
		for _, p := range paths {
			if _, err := os.Stat(p.path); os.IsNotExist(err) {
				fmt.Printf("- %s: Does not exist\n", p.label)
			} else {
				fmt.Printf("- %s: Exists\n", p.label)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathsCmd)

	configSetCmd.Flags().StringVar(&serverURL, "server-url", "", "Set backend server URL")
	configSetCmd.Flags().StringVar(&logLevel, "log-level", "", "Set log level (debug, info, warn, error)")
	configSetCmd.Flags().StringVar(&otlpEndpoint, "otlp-endpoint", "", "Set OTLP/HTTP collector endpoint (empty disables tracing)")

	configInitCmd.Flags().StringVar(&serverURL, "server-url", "", "Set backend server URL")
}
