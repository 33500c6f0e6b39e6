package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"hackscout/internal/ai"
	"hackscout/internal/config"
	"hackscout/internal/scraper"
	"hackscout/internal/source"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	appCfg  config.Config
)

// rootCmd is the base command called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hackscout",
	Short: "Hackscout CLI",
	Long:  "Hackathon listing scraper and generation assistant.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
}

func initConfig() {
	v := viper.GetViper()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/hackscout")
		v.AddConfigPath("configs")
	}

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			fmt.Fprintf(os.Stderr, "error reading config: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "error parsing config: %v\n", err)
		os.Exit(1)
	}

	appCfg.FillDefaults()
	setLogLevel(appCfg.App.LogLevel)
}

func setLogLevel(level string) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}

// GetConfig exposes the loaded configuration to subcommands.
func GetConfig() config.Config {
	return appCfg
}

// loadSources returns the built-in catalog plus any extras from the
// configured sources file.
func loadSources(cfg config.Config) ([]source.Config, error) {
	sources := source.Catalog()
	if cfg.Scraper.SourcesFile != "" {
		extra, err := source.LoadExtra(cfg.Scraper.SourcesFile)
		if err != nil {
			return nil, err
		}
		sources = append(sources, extra...)
	}
	return sources, nil
}

// buildScraper wires a scraper service from configuration.
func buildScraper(cfg config.Config, sources []source.Config) (*scraper.Service, error) {
	timeout, err := time.ParseDuration(cfg.Scraper.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid scraper.timeout: %w", err)
	}
	relayTimeout, err := time.ParseDuration(cfg.Scraper.RelayTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid scraper.relay_timeout: %w", err)
	}
	ttl, err := time.ParseDuration(cfg.Scraper.CacheTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid scraper.cache_ttl: %w", err)
	}
	return scraper.New(scraper.Options{
		Sources:      sources,
		UserAgent:    cfg.Scraper.UserAgent,
		Timeout:      timeout,
		RelayTimeout: relayTimeout,
		RelayURL:     cfg.Scraper.RelayURL,
		CacheTTL:     ttl,
	}), nil
}

// buildAssistant wires the generation service; mode follows the credential.
func buildAssistant(cfg config.Config) ai.Assistant {
	return ai.New(ai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	})
}
