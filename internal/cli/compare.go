package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/benchcmp/internal/config"
	"github.com/AndreyAkinshin/benchcmp/internal/dataset"
	"github.com/AndreyAkinshin/benchcmp/internal/errors"
	"github.com/AndreyAkinshin/benchcmp/internal/extract"
	"github.com/AndreyAkinshin/benchcmp/internal/output"
	"github.com/AndreyAkinshin/benchcmp/internal/validation"
)

// sourceFlags are the extraction flags shared by compare and extract.
type sourceFlags struct {
	configPath string
	tag        string
	table      bool
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "Config file (default: "+config.DefaultFileName+" in the working directory, if present)")
	fs.StringVar(&f.tag, "tag", "", "Extract data from lines starting with this tag")
	fs.BoolVar(&f.table, "table", false, "Extract data from whitespace-delimited tables")
}

type compareOptions struct {
	sourceFlags
	absolute    float64
	relative    float64
	absoluteSet bool
	relativeSet bool
	ignore      []string
	verbose     bool
}

func (a *app) newCompareCmd() *cobra.Command {
	opts := &compareOptions{}
	cmd := &cobra.Command{
		Use:   "compare BENCHMARK TEST",
		Short: "Compare the data in TEST against BENCHMARK",
		Long: "Extract data from both files with the same extractor and check every value\n" +
			"of TEST against the matching value of BENCHMARK.\n\n" +
			"Exit status is 0 when the comparison passes or only warns, 1 when it fails.",
		Args: exactFiles("BENCHMARK", "TEST"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose && a.quiet {
				return errors.Config("--verbose and --quiet cannot be used together")
			}
			opts.absoluteSet = cmd.Flags().Changed("absolute")
			opts.relativeSet = cmd.Flags().Changed("relative")
			return a.runCompare(cmd.Context(), opts, args[0], args[1])
		},
	}
	opts.register(cmd)
	fs := cmd.Flags()
	fs.Float64Var(&opts.absolute, "absolute", 0, "Default absolute tolerance (0 disables the check)")
	fs.Float64Var(&opts.relative, "relative", 0, "Default relative tolerance (0 disables the check)")
	fs.StringSliceVar(&opts.ignore, "ignore", nil, "Fields to leave out of the comparison (repeatable)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Print messages and the extracted data")
	return cmd
}

func (a *app) runCompare(ctx context.Context, opts *compareOptions, benchmarkPath, testPath string) error {
	cfg, err := a.loadConfig(&opts.sourceFlags)
	if err != nil {
		return err
	}
	if opts.absoluteSet {
		cfg.Tolerance.Absolute = &opts.absolute
	}
	if opts.relativeSet {
		cfg.Tolerance.Relative = &opts.relative
	}
	cfg.IgnoreFields = append(cfg.IgnoreFields, opts.ignore...)
	warnings, err := config.Validate(cfg)
	for _, w := range warnings {
		a.warn(w)
	}
	if err != nil {
		return &errors.BenchcmpError{Kind: errors.KindConfig, Message: err.Error(), Cause: err}
	}

	extractor, err := cfg.Extractor()
	if err != nil {
		return err
	}
	sets, err := extractAll(ctx, extractor, []string{"benchmark", "test"}, benchmarkPath, testPath)
	if err != nil {
		return err
	}
	benchmark, test := sets[0], sets[1]
	a.logger.Debug("extracted data",
		"mode", extractor.Name(),
		"benchmark_fields", benchmark.Len(),
		"test_fields", test.Len())

	result := validation.CompareData(benchmark, test, cfg.ToleranceTable(), cfg.IgnoreFields...)
	a.logger.Debug("compared data",
		"status", result.Status.String(),
		"comparable", result.Comparable)

	sink := bufio.NewWriter(a.out.Out())
	if err := output.NewStatusReporter(sink, opts.verbose).Report(result.Status, result.Message); err != nil {
		return errors.Wrap(err, "failed to write result")
	}
	if !opts.verbose {
		a.out.Println("")
	}

	if opts.verbose {
		if !result.Status.Passed() {
			a.out.Println("%s", output.FormatDataTable([]string{"benchmark", "test"}, []dataset.DataSet{benchmark, test}))
		}
		a.printSummary(extractor.Name(), benchmark.Without(cfg.IgnoreFields...).Len(), result.Status)
	}

	if result.Status.Failed() {
		return &exitError{code: errors.ExitRuntimeError}
	}
	return nil
}

func (a *app) printSummary(mode string, fields int, status validation.Status) {
	a.out.SummaryHeader("Comparison Summary")
	a.out.SummaryItem("Mode", mode)
	a.out.SummaryItem("Fields", strconv.Itoa(fields))
	// A Caser is stateful, so each summary gets its own.
	label := cases.Title(language.English).String(status.String())
	switch status {
	case validation.Pass:
		a.out.SummaryPassed("Status", label)
	case validation.Warning:
		a.out.SummaryWarning("Status", label)
	default:
		a.out.SummaryFailed("Status", label)
	}
}

// loadConfig resolves the configuration for a command: the explicit --config
// file, else the default file if present, else built-in defaults. Extraction
// flags override the file.
func (a *app) loadConfig(flags *sourceFlags) (*config.Config, error) {
	if flags.table && flags.tag != "" {
		return nil, errors.Config("--tag and --table cannot be used together")
	}
	path := flags.configPath
	if path == "" && fileExists(config.DefaultFileName) {
		path = config.DefaultFileName
	}

	cfg := config.Default()
	if path != "" {
		loaded, warnings, err := config.LoadAndValidate(path)
		for _, w := range warnings {
			a.warn(w)
		}
		if err != nil {
			return nil, err
		}
		cfg = loaded
		a.logger.Debug("loaded config", "path", path)
	}

	switch {
	case flags.table:
		cfg.Extract = config.ExtractConfig{Mode: extract.ModeTable}
	case flags.tag != "":
		cfg.Extract = config.ExtractConfig{Mode: extract.ModeTagged, Tag: flags.tag}
	}
	return cfg, nil
}

// extractAll extracts every path concurrently and returns the DataSets in
// argument order. Errors are prefixed with the matching label, if any.
func extractAll(ctx context.Context, e extract.Extractor, labels []string, paths ...string) ([]dataset.DataSet, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	sets := make([]dataset.DataSet, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ds, err := extract.ExtractFile(e, path)
			if err != nil {
				if i < len(labels) {
					return fmt.Errorf("%s: %w", labels[i], err)
				}
				return err
			}
			sets[i] = ds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}
