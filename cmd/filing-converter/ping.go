// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/filing-converter/internal/httputil"
	"github.com/pdiddy/filing-converter/pkg/types"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the conversion service is reachable",
	PreRun: func(cmd *cobra.Command, args []string) {
		bindFlags(cmd, serverKeys)
	},
	RunE: runPing,
}

func init() {
	addServerFlags(pingCmd)

	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, args []string) error {
	server := viper.GetString("server")
	client := httputil.NewClient(types.HTTPConfig{
		Timeout:   viper.GetDuration("timeout"),
		UserAgent: defaultUserAgent,
	})

	h, err := httputil.CheckHealth(cmd.Context(), client, server)
	if err != nil {
		newLogger().Error("health check failed", "server", server, "error", err)
		return err
	}
	fmt.Printf("%s: %s", server, h.Status)
	if h.Environment != "" {
		fmt.Printf(" (%s)", h.Environment)
	}
	fmt.Println()
	return nil
}
