// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/filing-converter/internal/trail"
	"github.com/pdiddy/filing-converter/pkg/types"
)

var trailCmd = &cobra.Command{
	Use:   "trail",
	Short: "Stream the pointer-trail animation for pointer events on stdin",
	Long: `Trail reads pointer events as JSON lines from stdin, for example

  {"type":"move","x":120,"y":48}
  {"type":"leave"}

(types: move, enter, down, leave) and writes one JSON line per animation
frame to stdout with the position and opacity of each of the six trail points.
The session ends after --frames frames, --settle frames after stdin closes,
or on interrupt.`,
	PreRun: func(cmd *cobra.Command, args []string) {
		bindFlags(cmd, map[string]string{"fps": "trail.fps"})
	},
	RunE: runTrail,
}

func init() {
	trailCmd.Flags().Int("fps", types.DefaultFPS, "animation frames per second")
	trailCmd.Flags().Int64("frames", 0, "stop after this many frames (0 = no limit)")
	trailCmd.Flags().Int64("settle", types.DefaultFPS, "frames to keep animating after stdin closes (0 = until interrupted)")

	rootCmd.AddCommand(trailCmd)
}

func runTrail(cmd *cobra.Command, args []string) error {
	cfg := types.TrailConfig{FPS: viper.GetInt("trail.fps")}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	limit, _ := cmd.Flags().GetInt64("frames")
	settle, _ := cmd.Flags().GetInt64("settle")
	if limit < 0 || settle < 0 {
		return fmt.Errorf("--frames and --settle must not be negative")
	}

	return trail.Stream(cmd.Context(), os.Stdin, os.Stdout, trail.StreamOptions{
		Frames: trail.NewTicker(cfg.FrameInterval()),
		Limit:  limit,
		Settle: settle,
		Logger: newLogger(),
	})
}
