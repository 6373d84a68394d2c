// Package cli provides command-line interface functionality for benchcmp.
package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/benchcmp/internal/errors"
	"github.com/AndreyAkinshin/benchcmp/internal/output"
)

// Version is set at build time.
var Version = "dev"

// exitError ends a run with a specific exit code and no further message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// app holds state shared by all commands of one invocation.
type app struct {
	out       *output.Writer
	logger    *slog.Logger
	logLevel  string
	logFormat string
	quiet     bool
	warned    map[string]bool
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return run(args, output.New())
}

func run(args []string, out *output.Writer) int {
	a := &app{
		out:    out,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	root := a.newRootCmd()
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return errors.ExitSuccess
	}

	var ee *exitError
	if stderrors.As(err, &ee) {
		return ee.code
	}
	out.ErrorPrefix("%v", err)
	return errors.GetExitCode(err)
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "benchcmp",
		Short: "Compare numerical program output against a benchmark",
		Long: "benchcmp extracts labelled numbers from program output, either from tagged\n" +
			"lines or from whitespace-delimited tables, and compares a test run against a\n" +
			"trusted benchmark within absolute and relative tolerances.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetOut(a.out.Out())
	root.SetErr(a.out.Err())
	root.SetVersionTemplate("benchcmp {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Config(err.Error())
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "warn", "Log level for diagnostics on stderr (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "text", "Log format (text, json)")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "Suppress summaries and hints")

	root.AddCommand(a.newCompareCmd())
	root.AddCommand(a.newExtractCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the benchcmp version",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			a.out.Println("benchcmp %s", Version)
		},
	})
	return root
}

// setup applies global flags once they are parsed.
func (a *app) setup() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return errors.Configf("invalid --log-level value %q (valid values: debug, info, warn, error)", a.logLevel)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch a.logFormat {
	case "text":
		a.logger = slog.New(slog.NewTextHandler(a.out.Err(), opts))
	case "json":
		a.logger = slog.New(slog.NewJSONHandler(a.out.Err(), opts))
	default:
		return errors.Configf("invalid --log-format value %q (valid values: text, json)", a.logFormat)
	}
	a.out.SetQuiet(a.quiet)
	return nil
}

// warn prints a warning once per invocation; the config is validated again
// after flag overrides and would otherwise repeat itself.
func (a *app) warn(msg string) {
	if a.warned[msg] {
		return
	}
	if a.warned == nil {
		a.warned = make(map[string]bool)
	}
	a.warned[msg] = true
	a.out.Warning("%s", msg)
}

// exactFiles requires exactly n file arguments, reporting misuse as a
// configuration error.
func exactFiles(names ...string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != len(names) {
			return errors.Configf("expected %d arguments (%s), got %d", len(names), strings.Join(names, ", "), len(args))
		}
		return nil
	}
}

// fileExists reports whether path names an existing file.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
