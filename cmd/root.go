package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vaxreg/internal/clock"
	"vaxreg/internal/config"
	"vaxreg/internal/i18n"
	"vaxreg/internal/log"
	"vaxreg/internal/registry"
	"vaxreg/internal/repl"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "vaxreg [language]",
	Short:   "A vaccination batch and inoculation registry",
	Long: `An interactive registry for vaccine batches and inoculations.
Commands are read line by line from standard input; the optional
language argument ("en" or "pt") selects the output message language.`,
	Args:    cobra.MaximumNArgs(1),
	Version: version,
	RunE:    runRegistry,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/vaxreg/config.yaml)")
	rootCmd.Flags().Bool("debug", false,
		"enable debug logging")
	rootCmd.Flags().Bool("save-language", false,
		"persist the language argument to the config file")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("language", defaults.Language)
	viper.SetDefault("hash_table_size", defaults.HashTableSize)
	viper.SetDefault("max_batches", defaults.MaxBatches)
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("log_file", defaults.LogFile)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .vaxreg/config.yaml (current directory)
		// 2. ~/.config/vaxreg/config.yaml (user config)
		if _, err := os.Stat(".vaxreg/config.yaml"); err == nil {
			viper.SetConfigFile(".vaxreg/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "vaxreg"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .vaxreg/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".vaxreg/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runRegistry(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		cfg.Language = string(i18n.ParseLang(args[0]))
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Debug || os.Getenv("VAXREG_DEBUG") != "" {
		logPath := cfg.LogFile
		if logPath == "" {
			logPath = config.DefaultLogFilePath()
		}
		if logPath != "" {
			if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err == nil {
				if cleanup, err := log.Init(logPath); err == nil {
					defer cleanup()
				}
			}
		}
	}

	if save, _ := cmd.Flags().GetBool("save-language"); save && len(args) > 0 {
		configFilePath := viper.ConfigFileUsed()
		if configFilePath == "" {
			configFilePath = ".vaxreg/config.yaml"
		}
		if err := config.SaveLanguage(configFilePath, cfg.Language); err != nil {
			return fmt.Errorf("saving language: %w", err)
		}
	}

	clk := clock.New(clock.Start)
	reg := registry.New(clk, cfg.HashTableSize, cfg.MaxBatches)
	r := repl.New(cmd.InOrStdin(), cmd.OutOrStdout(), reg, clk, i18n.Lang(cfg.Language))
	if err := r.Run(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
