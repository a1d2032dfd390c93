package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"imghdr/internal/scan"
)

func newInspectCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [files...]",
		Short: "Print dimensions and DPI for each file",
		Long: `Prints one line per file:

  cover.jpg: 3000x3000 dpi=300.00,300.00
  banner.png: 1920x1080 dpi=-
  notes.txt: no metadata

Use --json for machine-readable output.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := runScan(cmd, opts, args)
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), reports)
			}
			for _, r := range reports {
				fmt.Fprintln(cmd.OutOrStdout(), formatReport(r))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Print reports as JSON")
	return cmd
}

// runScan applies flag overrides to the config and scans paths.
func runScan(cmd *cobra.Command, opts *options, paths []string) ([]scan.Report, error) {
	s := &scan.Scanner{
		Workers:      opts.cfg.Workers,
		Sniff:        opts.cfg.Sniff,
		MIMEOverride: opts.mime,
		Logger:       opts.logger,
	}
	if opts.workers > 0 {
		s.Workers = opts.workers
	}
	if cmd.Flags().Changed("sniff") {
		s.Sniff = opts.sniff
	}

	if t := opts.cfg.ProgressThreshold; t > 0 && len(paths) > t {
		bar := progressbar.NewOptions(len(paths),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("scanning"),
			progressbar.OptionClearOnFinish(),
		)
		s.Progress = func(n int) { _ = bar.Add(n) }
		defer func() { _ = bar.Finish() }()
	}

	opts.logger.Debug("Scanning files")
	return s.Run(cmd.Context(), paths)
}

func formatReport(r scan.Report) string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("%s: error: %v", r.Path, r.Err)
	case !r.OK:
		return fmt.Sprintf("%s: no metadata", r.Path)
	}
	dpi := "-"
	if md := r.Metadata; md.HasDPI() {
		dpi = fmt.Sprintf("%.2f,%.2f", *md.DPIX, *md.DPIY)
	}
	return fmt.Sprintf("%s: %dx%d dpi=%s", r.Path, r.Metadata.Width, r.Metadata.Height, dpi)
}

type jsonReport struct {
	scan.Report
	Error string `json:"error,omitempty"`
}

func writeJSON(w io.Writer, reports []scan.Report) error {
	out := make([]jsonReport, len(reports))
	for i, r := range reports {
		out[i] = jsonReport{Report: r}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
