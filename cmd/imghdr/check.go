package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Validate files against the artwork rules",
		Long: `Checks each file's dimensions and resolution against the artwork rules
from the config file (artwork: section), or the built-in defaults:
1400x1400 to 6000x6000 pixels, square.

Files without readable metadata fail. Missing DPI never fails a check.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			constraints := opts.cfg.Artwork
			if cmd.Flags().Changed("min-dpi") {
				constraints.MinDPI = opts.minDPI
			}

			reports, err := runScan(cmd, opts, args)
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range reports {
				var line string
				switch {
				case r.Err != nil:
					line = fmt.Sprintf("%s: error: %v", r.Path, r.Err)
				case !r.OK:
					line = fmt.Sprintf("%s: FAIL no metadata", r.Path)
				default:
					if err := constraints.Check(r.Metadata); err != nil {
						line = fmt.Sprintf("%s: FAIL %v", r.Path, err)
					} else {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", r.Path)
						continue
					}
				}
				failed++
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed artwork checks", failed, len(reports))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&opts.minDPI, "min-dpi", 0, "Minimum DPI (overrides config)")
	return cmd
}
