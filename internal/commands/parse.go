package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/txlog-dev/txlog/internal/config"
	"github.com/txlog-dev/txlog/internal/ledger"
	"github.com/txlog-dev/txlog/internal/report"
)

// Options carries everything one parse run needs. It is passed
// explicitly; there is no process-wide state.
type Options struct {
	InputPath  string
	OutputPath string  // empty = no record export
	Format     string  // csv, xlsx, or pdf; empty = infer from OutputPath
	UserID     *uint64 // optional summary filter
	NoStats    bool    // suppress the summary
	ConfigPath string  // optional txlog.yaml

	Stdout io.Writer
	Stderr io.Writer
}

func newParseCommand() *cobra.Command {
	var opts Options
	var user string

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Decode an MPS7 log and report totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if user != "" {
				id, err := strconv.ParseUint(user, 10, 64)
				if err != nil {
					return fmt.Errorf("parsing user id %q: %w", user, err)
				}
				opts.UserID = &id
			}
			opts.Stdout = cmd.OutOrStdout()
			opts.Stderr = cmd.ErrOrStderr()
			return runParse(opts)
		},
	}

	cmd.Flags().StringVar(&opts.InputPath, "input", "", "path to the MPS7 log (required)")
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().StringVar(&opts.OutputPath, "output", "", "write the record listing to this file")
	cmd.Flags().StringVar(&opts.Format, "format", "", "output format: csv, xlsx, or pdf (default: from file extension)")
	cmd.Flags().StringVar(&user, "user", "", "user ID to report a balance for")
	cmd.Flags().BoolVar(&opts.NoStats, "no-stats", false, "suppress the summary")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to txlog.yaml")

	return cmd
}

func runParse(opts Options) error {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	data, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", opts.InputPath, err)
	}

	res, err := ledger.Parse(data, ledger.Options{
		AcceptedVersions: cfg.AcceptedVersions(),
		KeepRecords:      opts.OutputPath != "",
	})
	if err != nil {
		return fmt.Errorf("parsing %s: %w", opts.InputPath, err)
	}

	for _, w := range res.Warnings {
		fmt.Fprintf(opts.Stderr, "warning: %v\n", w)
	}

	if opts.OutputPath != "" {
		if err := writeExport(opts, cfg, res); err != nil {
			return err
		}
	}

	if !opts.NoStats {
		fmt.Fprintf(opts.Stdout, "MPS7 version %d\n\n", res.Header.Version)
		fmt.Fprint(opts.Stdout, report.Summary(res.Book, opts.UserID, cfg.Report.Currency))
	}

	return nil
}

func writeExport(opts Options, cfg *config.Config, res *ledger.Result) error {
	format, err := resolveFormat(opts.Format, opts.OutputPath)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		f, err := os.Create(opts.OutputPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", opts.OutputPath, err)
		}
		defer f.Close()
		if err := report.WriteCSV(f, res.Records, cfg.Report.CSVHeader); err != nil {
			return fmt.Errorf("writing %s: %w", opts.OutputPath, err)
		}
		return nil
	case "xlsx":
		data, err := report.BuildXLSX(res.Book, res.Records)
		if err != nil {
			return err
		}
		return writeFile(opts.OutputPath, data)
	case "pdf":
		data, err := report.BuildPDF(res.Book, res.Records)
		if err != nil {
			return err
		}
		return writeFile(opts.OutputPath, data)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// resolveFormat picks the export format: an explicit --format wins,
// otherwise the output file's extension, defaulting to csv.
func resolveFormat(format, path string) (string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".xlsx":
			return "xlsx", nil
		case ".pdf":
			return "pdf", nil
		default:
			return "csv", nil
		}
	}
	switch format {
	case "csv", "xlsx", "pdf":
		return format, nil
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
