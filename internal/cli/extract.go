package cli

import (
	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/benchcmp/internal/errors"
	"github.com/AndreyAkinshin/benchcmp/internal/output"
)

func (a *app) newExtractCmd() *cobra.Command {
	flags := &sourceFlags{}
	cmd := &cobra.Command{
		Use:   "extract FILE...",
		Short: "Print the data extracted from each FILE",
		Long: "Extract data from every FILE and print it as a table with one row per file,\n" +
			"to check what compare will see.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.Config("expected at least one FILE argument")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(flags)
			if err != nil {
				return err
			}
			extractor, err := cfg.Extractor()
			if err != nil {
				return err
			}
			sets, err := extractAll(cmd.Context(), extractor, nil, args...)
			if err != nil {
				return err
			}
			a.logger.Debug("extracted data", "mode", extractor.Name(), "files", len(args))
			a.out.Println("%s", output.FormatDataTable(args, sets))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
