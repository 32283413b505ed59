package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mailops-lab/mailquota/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// stdoutSentinel selects standard output as the report destination
const stdoutSentinel = "-"

// Output holds report output configuration
type Output struct {
	Path   string
	Format string
	Quiet  bool
}

// Flags returns CLI flags for report output configuration
func (o *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output for results (use - for stdout)",
			Category:    "Output",
			Value:       stdoutSentinel,
			Sources:     cli.EnvVars("MAILQUOTA_OUTPUT"),
			Destination: &o.Path,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Output format for results (text, csv)",
			Category:    "Output",
			Value:       types.FormatText.String(),
			Sources:     cli.EnvVars("MAILQUOTA_FORMAT"),
			Destination: &o.Format,
		},
		&cli.BoolFlag{
			Name:        "quiet",
			Aliases:     []string{"q"},
			Usage:       "Don't show progress messages",
			Category:    "Output",
			Sources:     cli.EnvVars("MAILQUOTA_QUIET"),
			Destination: &o.Quiet,
		},
	}
}

// Validate validates the report output configuration
func (o *Output) Validate() error {
	if o.Path == "" {
		return goerr.New("output destination is required")
	}
	if !o.OutputFormat().IsValid() {
		return goerr.New("invalid output format", goerr.V("format", o.Format))
	}
	return nil
}

// OutputFormat returns the typed output format
func (o *Output) OutputFormat() types.OutputFormat {
	return types.OutputFormat(o.Format)
}

// Progress returns the writer for progress feedback, honoring quiet mode
func (o *Output) Progress() io.Writer {
	if o.Quiet {
		return io.Discard
	}
	return os.Stderr
}

// Open returns the report destination writer. Stdout is wrapped so that
// closing it is a no-op; a file destination is created or truncated.
func (o *Output) Open() (io.WriteCloser, error) {
	if o.Path == stdoutSentinel {
		return nopCloser{os.Stdout}, nil
	}

	file, err := os.Create(o.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create output file", goerr.V("path", o.Path))
	}
	return file, nil
}

// LogValue returns structured log value
func (o Output) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", o.Path),
		slog.String("format", o.Format),
		slog.Bool("quiet", o.Quiet),
	)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
