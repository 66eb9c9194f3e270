// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/filing-converter/pkg/types"
)

const (
	defaultTimeout   = 120 * time.Second
	defaultUserAgent = "filing-converter/0.1"
	defaultOutputDir = "workbooks"
)

// bindFlags binds each flag of cmd to its viper key so values can also come
// from the config file or environment. Commands call it when they run, since
// several commands share keys.
func bindFlags(cmd *cobra.Command, keys map[string]string) {
	for flag, key := range keys {
		viper.BindPFlag(key, cmd.Flags().Lookup(flag))
	}
}

// addServerFlags registers the flags shared by commands that talk to the
// conversion service.
func addServerFlags(cmd *cobra.Command) {
	cmd.Flags().String("server", types.DefaultServer, "conversion service base URL")
	cmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
}

var serverKeys = map[string]string{
	"server":  "server",
	"timeout": "timeout",
}

// converterConfig assembles and validates the converter settings from flags,
// config file and environment.
func converterConfig() (types.ConverterConfig, error) {
	cfg := types.ConverterConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: defaultUserAgent,
		},
		Server:      viper.GetString("server"),
		Endpoint:    viper.GetString("endpoint"),
		OutputDir:   viper.GetString("output_dir"),
		MaxFileSize: viper.GetInt64("max_file_size"),
	}
	if ua := viper.GetString("user_agent"); ua != "" {
		cfg.UserAgent = ua
	}
	if cfg.MaxFileSize == 0 {
		cfg.MaxFileSize = types.DefaultMaxFileSize
	}
	if err := cfg.Validate(); err != nil {
		return types.ConverterConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
