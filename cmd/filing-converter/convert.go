// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/filing-converter/internal/httputil"
	"github.com/pdiddy/filing-converter/internal/upload"
	"github.com/pdiddy/filing-converter/internal/workbook"
	"github.com/pdiddy/filing-converter/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [filings...]",
	Short: "Upload XBRL filings and save the generated Excel workbooks",
	Long: `Convert uploads each .xml or .xbrl filing to the conversion service and
saves the returned workbook into the output directory, using the filename the
service suggests. Files over 15 MB or with another extension are rejected
locally. Each file gets one attempt; failures are reported and the remaining
files are still processed.`,
	PreRun: func(cmd *cobra.Command, args []string) {
		bindFlags(cmd, serverKeys)
		bindFlags(cmd, map[string]string{
			"endpoint":   "endpoint",
			"output-dir": "output_dir",
			"inspect":    "inspect",
		})
	},
	RunE: runConvert,
}

func init() {
	addServerFlags(convertCmd)
	convertCmd.Flags().String("endpoint", types.DefaultEndpoint, "conversion route on the service")
	convertCmd.Flags().String("output-dir", defaultOutputDir, "directory for downloaded workbooks")
	convertCmd.Flags().Bool("inspect", true, "list the worksheets of each downloaded workbook")
	convertCmd.Flags().String("format", "text", "output format: text, json, or yaml")

	rootCmd.AddCommand(convertCmd)
}

// convertReport is the structured output of the convert command.
type convertReport struct {
	upload.BatchResult `yaml:",inline"`

	Workbooks map[string][]workbook.Sheet `json:"workbooks,omitempty" yaml:"workbooks,omitempty"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more .xml or .xbrl filings")
	}

	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" && format != "yaml" {
		return fmt.Errorf("unknown format %q: use text, json, or yaml", format)
	}

	cfg, err := converterConfig()
	if err != nil {
		return err
	}
	log := newLogger()

	ctrl := upload.New(cfg, httputil.NewClient(cfg.HTTPConfig), upload.DirDownloader{Dir: cfg.OutputDir},
		upload.WithLogger(log))

	var progress io.Writer = os.Stdout
	if format != "text" {
		progress = io.Discard
	}
	report := convertReport{BatchResult: upload.RunBatch(cmd.Context(), ctrl, args, progress)}

	if viper.GetBool("inspect") {
		report.Workbooks = inspectDownloads(report.Outcomes, progress, log)
	}

	if err := writeReport(os.Stdout, format, report); err != nil {
		return err
	}
	if report.HasFailures() {
		return fmt.Errorf("%d filing(s) failed conversion", report.Failed)
	}
	return nil
}

// inspectDownloads lists the sheets of each saved workbook. Unreadable
// workbooks are logged; the conversion itself already succeeded.
func inspectDownloads(outcomes []upload.Outcome, w io.Writer, log *slog.Logger) map[string][]workbook.Sheet {
	sheets := make(map[string][]workbook.Sheet)
	for _, o := range outcomes {
		if o.Download == nil {
			continue
		}
		summary, err := workbook.InspectFile(o.Download.Path)
		if err != nil {
			log.Warn("could not inspect workbook", "path", o.Download.Path, "error", err)
			continue
		}
		sheets[o.Download.Path] = summary.Sheets
		fmt.Fprintf(w, "  %s: %d sheet(s)\n", o.Download.Name, len(summary.Sheets))
		for _, s := range summary.Sheets {
			fmt.Fprintf(w, "    - %s %s\n", s.Name, s.Dimension)
		}
	}
	return sheets
}

func writeReport(w io.Writer, format string, report convertReport) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(report)
	default:
		return nil
	}
}
