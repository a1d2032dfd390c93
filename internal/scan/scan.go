// Package scan parses image headers for many files concurrently.
package scan

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"imghdr"
)

const defaultWorkers = 4

// Report is the outcome for one file.
type Report struct {
	Path     string          `json:"path"`
	MIME     string          `json:"mime"`
	Metadata imghdr.Metadata `json:"metadata"`
	OK       bool            `json:"ok"`
	Err      error           `json:"-"`
}

// Scanner parses files with a bounded number of workers.
type Scanner struct {
	// Workers bounds concurrent reads. Values below 1 use the default of 4.
	Workers int

	// MIMEOverride, when set, is used for every file.
	MIMEOverride string

	// Sniff enables magic-byte detection for files whose extension is unknown.
	Sniff bool

	// Progress is called once per finished file. It may be called concurrently.
	Progress func(n int)

	Logger *zap.Logger
}

// Run parses every path and returns reports in input order. Per-file errors
// are recorded in the report; only context cancellation aborts the run.
func (s *Scanner) Run(ctx context.Context, paths []string) ([]Report, error) {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := s.Workers
	if workers < 1 {
		workers = defaultWorkers
	}

	reports := make([]Report, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path // per-iteration copy (go directive < 1.22)
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = s.scanFile(path)
			r := &reports[i]
			switch {
			case r.Err != nil:
				logger.Warn("Failed to read image", zap.String("path", path), zap.Error(r.Err))
			case !r.OK:
				logger.Debug("No metadata", zap.String("path", path), zap.String("mime", r.MIME))
			default:
				logger.Debug("Parsed image",
					zap.String("path", path),
					zap.String("mime", r.MIME),
					zap.Int("width", r.Metadata.Width),
					zap.Int("height", r.Metadata.Height),
					zap.Bool("dpi", r.Metadata.HasDPI()))
			}
			if s.Progress != nil {
				s.Progress(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *Scanner) scanFile(path string) Report {
	r := Report{Path: path}

	data, err := readFile(path)
	if err != nil {
		r.Err = err
		return r
	}

	r.MIME = s.resolveMIME(path, data)
	r.Metadata, r.OK = imghdr.Parse(data, r.MIME)
	return r
}

// resolveMIME picks the declared type for path: override, then extension,
// then magic bytes when sniffing is enabled.
func (s *Scanner) resolveMIME(path string, data []byte) string {
	if s.MIMEOverride != "" {
		return s.MIMEOverride
	}
	if m := imghdr.MIMEFromExtension(path); m != "" {
		return m
	}
	if s.Sniff {
		return imghdr.DetectMIME(data)
	}
	return ""
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, imghdr.ErrInvalidSource)
	}
	if info.Size() > imghdr.MaxInputSize {
		return nil, fmt.Errorf("%s: %w", path, imghdr.ErrTooLarge)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}
