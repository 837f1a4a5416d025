package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"congrec/internal/model"
)

// loadConfig merges viper state (file, env, flags) over the defaults.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("api_key"); v != "" {
		cfg.API.Key = v
	}
	if v := viper.GetString("api_base_url"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := viper.GetStringSlice("procedural_terms"); len(v) > 0 {
		cfg.Filter.ProceduralTerms = v
	}
	if v := viper.GetDuration("http_timeout"); v > 0 {
		cfg.HTTP.Timeout = v
	}
	if v := viper.GetString("user_agent"); v != "" {
		cfg.HTTP.UserAgent = v
	}
	if v := viper.GetDuration("fetch_delay"); v > 0 {
		cfg.Fetch.Delay = v
	}
	if viper.IsSet("check_robots") {
		cfg.Fetch.CheckRobots = viper.GetBool("check_robots")
	}
	if v := viper.GetString("database"); v != "" {
		cfg.Paths.Database = v
	}
	if v := viper.GetString("articles_dir"); v != "" {
		cfg.Paths.ArticlesDir = v
	}
	if v := viper.GetString("parsed_dir"); v != "" {
		cfg.Paths.ParsedDir = v
	}
	if v := viper.GetString("members_csv"); v != "" {
		cfg.Paths.MembersCSV = v
	}
	if viper.IsSet("cache_enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache_enabled")
	}
	if v := viper.GetString("cache_dir"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := viper.GetDuration("cache_memory_ttl"); v > 0 {
		cfg.Cache.MemoryTTL = v
	}
	if v := viper.GetDuration("cache_disk_ttl"); v > 0 {
		cfg.Cache.DiskTTL = v
	}
	if v := viper.GetInt("parse_workers"); v > 0 {
		cfg.Concurrency.ParseWorkers = v
	}
	cfg.Output.Verbose = verbose
	return cfg
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage congrec configuration",
	Long: `Manage congrec configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (CONGREC_*)
3. Config file (~/.congrec/config.yaml)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		if file := viper.ConfigFileUsed(); file != "" {
			fmt.Fprintf(os.Stderr, "Configuration file: %s\n\n", file)
		} else {
			fmt.Fprintf(os.Stderr, "No configuration file found (using defaults)\n\n")
		}

		// Never echo the credential.
		if cfg.API.Key != "" {
			cfg.API.Key = "(set)"
		}

		yamlData, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}
		fmt.Println(string(yamlData))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	Long:  `Create a default configuration file at ~/.congrec/config.yaml with all available options documented.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error finding home directory: %w", err)
		}

		configDir := home + "/.congrec"
		configPath := configDir + "/config.yaml"

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config file already exists: %s\nUse 'congrec config show' to view it, or delete it first to recreate", configPath)
		}

		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("error creating config directory: %w", err)
		}

		f, err := os.Create(configPath)
		if err != nil {
			return fmt.Errorf("error creating config file: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close config file: %w", closeErr)
			}
		}()

		defaults := model.DefaultConfig()
		flat := map[string]any{
			"api_key":          "",
			"api_base_url":     defaults.API.BaseURL,
			"procedural_terms": defaults.Filter.ProceduralTerms,
			"http_timeout":     defaults.HTTP.Timeout.String(),
			"user_agent":       defaults.HTTP.UserAgent,
			"fetch_delay":      defaults.Fetch.Delay.String(),
			"check_robots":     defaults.Fetch.CheckRobots,
			"database":         defaults.Paths.Database,
			"articles_dir":     defaults.Paths.ArticlesDir,
			"parsed_dir":       defaults.Paths.ParsedDir,
			"members_csv":      defaults.Paths.MembersCSV,
			"cache_enabled":    defaults.Cache.Enabled,
			"cache_dir":        defaults.Cache.Dir,
			"cache_memory_ttl": defaults.Cache.MemoryTTL.String(),
			"cache_disk_ttl":   defaults.Cache.DiskTTL.String(),
			"parse_workers":    defaults.Concurrency.ParseWorkers,
		}

		if _, err := fmt.Fprintf(f, "# congrec configuration file\n#\n# Hierarchy (highest to lowest priority):\n#   1. CLI flags\n#   2. Environment variables (CONGREC_*)\n#   3. This config file\n#   4. Built-in defaults\n\n"); err != nil {
			return fmt.Errorf("error writing config: %w", err)
		}

		yamlData, err := yaml.Marshal(flat)
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}
		if _, err := f.Write(yamlData); err != nil {
			return fmt.Errorf("error writing config: %w", err)
		}
		if _, err := fmt.Fprintf(f, "\n# The API key can also come from the environment:\n#   export CONGREC_API_KEY=...\n"); err != nil {
			return fmt.Errorf("error writing config: %w", err)
		}

		fmt.Printf("✓ Created default configuration: %s\n", configPath)
		fmt.Printf("\nSet your API key, then verify with:\n")
		fmt.Printf("  congrec config show\n\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
