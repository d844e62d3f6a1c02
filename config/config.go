package config

import (
	"fmt"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
	"repolens/constants/lipgloss"
	"time"
)

// GitHubConfig holds the endpoints and timeout for repository access.
type GitHubConfig struct {
	APIBaseURL            string `mapstructure:"api_base_url"`
	RawBaseURL            string `mapstructure:"raw_base_url"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds"`
}

// RequestTimeout returns the per-request timeout as a duration.
func (c *GitHubConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Config represents the structure of the configuration file
type Config struct {
	Version string        `mapstructure:"version"`
	Theme   string        `mapstructure:"theme"`
	GitHub  *GitHubConfig `mapstructure:"github"`
}

// DefaultConfig values
var DefaultConfig = Config{
	Version: "1.0.0",
	Theme:   "dracula",
	GitHub: &GitHubConfig{
		APIBaseURL:            "https://api.github.com",
		RawBaseURL:            "https://raw.githubusercontent.com",
		RequestTimeoutSeconds: 10,
	},
}

// cfgFile holds the path to the configuration file (set via CLI)
var cfgFile string

// LoadConfigs initializes the configuration from file, flags, and environment variables, and returns the final config.
func LoadConfigs(rootCmd *cobra.Command, cwd string) *Config {
	var config *Config

	// Pick up a local .env before the environment is read
	_ = godotenv.Load()

	// Set default values using Viper
	setDefaults()

	// Automatically read environment variables
	viper.AutomaticEnv()

	// Explicitly bind environment variables to config keys
	bindEnv()

	// Check if the user provided a config file
	if cfgFile != "" {
		// Use the config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Look for configuration files in the current directory
		viper.SetConfigName("repolens-config") // Name of config file (without extension)
		viper.AddConfigPath(cwd)               // Look in the current working directory

		// Support both JSON and YAML formats
		viper.SetConfigType("yaml") // Set default type
		if err := viper.ReadInConfig(); err != nil {
			// If YAML fails, try JSON. If both fail, continue silently with
			// defaults; stdout must stay machine-readable and a missing config
			// file is the normal case.
			viper.SetConfigType("json")
			_ = viper.ReadInConfig()
		}
	}

	// Read the explicitly specified config file (if any)
	if cfgFile != "" {
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintln(os.Stderr, lipgloss.Red.Render(fmt.Sprintf("Error reading config file: %v", err)))
			os.Exit(1)
		}
	}

	// Bind CLI flags to override config values
	bindFlags(rootCmd)

	// Unmarshal the configuration into the Config struct
	if err := viper.Unmarshal(&config); err != nil {
		fmt.Fprintln(os.Stderr, lipgloss.Red.Render(fmt.Sprintf("Unable to decode into struct: %v", err)))
		os.Exit(1)
	}

	return config
}

// setDefaults sets all default configuration values
func setDefaults() {
	viper.SetDefault("version", DefaultConfig.Version)
	viper.SetDefault("theme", DefaultConfig.Theme)
	viper.SetDefault("github.api_base_url", DefaultConfig.GitHub.APIBaseURL)
	viper.SetDefault("github.raw_base_url", DefaultConfig.GitHub.RawBaseURL)
	viper.SetDefault("github.request_timeout_seconds", DefaultConfig.GitHub.RequestTimeoutSeconds)
}

// bindEnv explicitly binds environment variables to configuration keys
func bindEnv() {
	_ = viper.BindEnv("theme", "THEME")
	_ = viper.BindEnv("github.api_base_url", "GITHUB_API_BASE_URL")
	_ = viper.BindEnv("github.raw_base_url", "GITHUB_RAW_BASE_URL")
	_ = viper.BindEnv("github.request_timeout_seconds", "GITHUB_REQUEST_TIMEOUT_SECONDS")
}

// bindFlags binds the CLI flags to configuration values.
func bindFlags(rootCmd *cobra.Command) {
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("github.api_base_url", rootCmd.PersistentFlags().Lookup("api_base_url"))
	_ = viper.BindPFlag("github.raw_base_url", rootCmd.PersistentFlags().Lookup("raw_base_url"))
	_ = viper.BindPFlag("github.request_timeout_seconds", rootCmd.PersistentFlags().Lookup("request_timeout_seconds"))
}

// InitFlags initializes the flags for the root command.
func InitFlags(rootCmd *cobra.Command) {
	// Use PersistentFlags so that these flags are available in all subcommands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Specifies the path to a configuration file (JSON or YAML) that contains all the settings for the application.")

	// Theme configuration for highlighted output
	rootCmd.PersistentFlags().String("theme", DefaultConfig.Theme, "Set the syntax highlighting theme used by pretty output. (e.g., 'dracula', 'light', 'dark')")

	// GitHub endpoint configuration
	rootCmd.PersistentFlags().String("api_base_url", DefaultConfig.GitHub.APIBaseURL, "The base URL of the GitHub API.")
	rootCmd.PersistentFlags().String("raw_base_url", DefaultConfig.GitHub.RawBaseURL, "The base URL of the raw file content host.")
	rootCmd.PersistentFlags().Int("request_timeout_seconds", DefaultConfig.GitHub.RequestTimeoutSeconds, "Timeout in seconds applied to every network request.")

	// Version flag
	rootCmd.Flags().BoolP("version", "v", false, "Specifies the version of the application.")
}
