package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"imghdr/internal/config"
)

// options holds flags shared by every command.
type options struct {
	verbose    bool
	configPath string

	// scanner flags
	workers int
	sniff   bool
	mime    string
	jsonOut bool

	// check flags
	minDPI float64

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "imghdr",
		Short: "Read image dimensions and DPI from PNG and JPEG headers",
		Long: `imghdr reads pixel dimensions and resolution from PNG and JPEG files
without decoding pixel data.

The format is taken from the file extension, from --mime, or from the
file's magic bytes when --sniff is set.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			logger, err := newLogger(cfg.LogLevel, opts.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().IntVarP(&opts.workers, "workers", "w", 0, "Number of files read concurrently (default from config)")
	rootCmd.PersistentFlags().BoolVar(&opts.sniff, "sniff", false, "Detect the format from magic bytes when the extension is unknown")
	rootCmd.PersistentFlags().StringVar(&opts.mime, "mime", "", "Treat every file as this MIME type (image/png or image/jpeg)")

	rootCmd.AddCommand(newInspectCmd(opts), newCheckCmd(opts))
	return rootCmd
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
