// Command spanalign highlights the exact overlap between two texts.
//
// Usage:
//
//	spanalign [flags] TEXT_A TEXT_B
//	spanalign [flags] --file-a a.txt --file-b b.txt
//
// Each text is printed as a table of spans with the strength of the longest
// match covering it, or as JSON with --format json.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/unicode/norm"

	"github.com/dacharyc/overlap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

type rootFlags struct {
	minLen        int
	preset        string
	maxCells      int
	maxRectangles int
	format        string
	width         int
	nfc           bool
	configPath    string
	fileA, fileB  string
	verbose       bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "spanalign [flags] TEXT_A TEXT_B",
		Short: "Highlight exact common substrings of two texts",
		Long: `Finds every exact common substring of at least the minimum length shared by
two texts and partitions each text into spans. A span's strength is the
length of the longest match covering it.`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd, f, args)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.IntVar(&f.minLen, "min-len", overlap.SentenceMinLen, "minimum match length in characters")
	fl.StringVar(&f.preset, "preset", "", "named minimum length from the config (sentence, document)")
	fl.IntVar(&f.maxCells, "max-cells", overlap.DefaultMaxCells, "character comparison budget (0 = unlimited)")
	fl.IntVar(&f.maxRectangles, "max-rectangles", 0, "rectangle budget (0 = unlimited)")
	fl.StringVar(&f.format, "format", "text", "output format: text or json")
	fl.IntVar(&f.width, "width", 60, "text column width for span text")
	fl.BoolVar(&f.nfc, "nfc", false, "apply Unicode NFC normalization to both texts first")
	fl.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	fl.StringVar(&f.fileA, "file-a", "", "read text A from a file")
	fl.StringVar(&f.fileB, "file-b", "", "read text B from a file")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log every examined rectangle")
	cmd.MarkFlagsMutuallyExclusive("min-len", "preset")

	return cmd
}

func runAlign(cmd *cobra.Command, f *rootFlags, args []string) error {
	cfg, err := LoadConfig(f.configPath)
	if err != nil {
		return err
	}

	minLen := f.minLen
	if !cmd.Flags().Changed("min-len") {
		if minLen, err = cfg.MinLen(f.preset); err != nil {
			return err
		}
	}
	maxCells := cfg.MaxCells
	if cmd.Flags().Changed("max-cells") {
		maxCells = f.maxCells
	}
	maxRectangles := cfg.MaxRectangles
	if cmd.Flags().Changed("max-rectangles") {
		maxRectangles = f.maxRectangles
	}
	if f.format != "text" && f.format != "json" {
		return fmt.Errorf("unknown format %q", f.format)
	}

	a, b, err := readInputs(f, args)
	if err != nil {
		return err
	}
	if f.nfc {
		a, b = norm.NFC.String(a), norm.NFC.String(b)
	}

	logger := newLogger(cmd.ErrOrStderr(), f.verbose)
	defer func() { _ = logger.Sync() }()

	ra, rb := []rune(a), []rune(b)
	matches, err := overlap.FindMatchesContext(cmd.Context(), ra, rb, minLen,
		overlap.WithMaxCells(maxCells),
		overlap.WithMaxRectangles(maxRectangles),
		overlap.WithLogger(logger),
	)
	truncated := false
	switch {
	case errors.Is(err, overlap.ErrResourceExceeded):
		logger.Warn("search budget exceeded, printing partial result", zap.Error(err))
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		truncated = true
	case err != nil:
		return err
	}

	al := alignment{
		MinLen:    minLen,
		A:         newSideOutput(overlap.BuildSpans(ra, overlap.ProjectA(matches)), cfg.HighlightCeiling),
		B:         newSideOutput(overlap.BuildSpans(rb, overlap.ProjectB(matches)), cfg.HighlightCeiling),
		Matches:   newMatchOutputs(matches),
		Truncated: truncated,
	}
	if f.format == "json" {
		return writeJSON(cmd.OutOrStdout(), al)
	}
	return writeText(cmd.OutOrStdout(), al, f.width)
}

// readInputs takes each text from its file flag or its positional argument.
func readInputs(f *rootFlags, args []string) (string, string, error) {
	texts := [2]string{}
	files := [2]string{f.fileA, f.fileB}
	next := 0
	for i := range texts {
		if files[i] != "" {
			data, err := os.ReadFile(files[i])
			if err != nil {
				return "", "", fmt.Errorf("failed to read text %c: %w", 'A'+i, err)
			}
			texts[i] = string(data)
			continue
		}
		if next >= len(args) {
			return "", "", fmt.Errorf("missing text %c: pass it as an argument or with --file-%c", 'A'+i, 'a'+i)
		}
		texts[i] = args[next]
		next++
	}
	if next < len(args) {
		return "", "", fmt.Errorf("unexpected argument %q", args[next])
	}

	for i, t := range texts {
		if !utf8.ValidString(t) {
			return "", "", fmt.Errorf("%w: text %c is not valid UTF-8", overlap.ErrInvalidArgument, 'A'+i)
		}
	}
	return texts[0], texts[1], nil
}

// newLogger writes JSON logs to w at warn level, or debug level when verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}
