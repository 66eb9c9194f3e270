// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the filing-converter CLI.
// It drives the filing upload workflow against a conversion service and
// exposes the pointer-trail animator as a JSON-lines stream.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/filing-converter/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the filing-converter CLI.
var rootCmd = &cobra.Command{
	Use:   "filing-converter",
	Short: "Convert XBRL financial filings into Excel workbooks",
	Long: `filing-converter uploads XBRL/XML financial filings to a conversion
service and saves the generated Excel workbook locally.

Subcommands: convert uploads one or more filings, ping checks that the
service is up, and trail streams the pointer-trail animation for a sequence
of pointer events.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./filing-converter.yaml or ~/.config/filing-converter/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("filing-converter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "filing-converter"))
		}
	}

	viper.SetEnvPrefix("FILING_CONVERTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the stderr logger at the configured level.
func newLogger() *slog.Logger {
	return logging.New(os.Stderr, viper.GetString("log_level"))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
