package cli

import (
	"io"

	"babynames/internal/engine"
	"babynames/internal/storage"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newConvertCommand(cfg *Config, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [spreadsheet]",
		Short: "Load a spreadsheet and save it as processed data.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Data = args[0]
			}
			return convert(cfg, stdout)
		},
	}
}

func convert(cfg *Config, stdout io.Writer) error {
	s, err := engine.Load(cfg.Data, cfg.loadOptions())
	if err != nil {
		return errors.Wrap(err, "loading spreadsheet")
	}
	if err := storage.Save(cfg.DB, s); err != nil {
		return errors.Wrap(err, "saving processed data")
	}
	writeSummary(stdout, s)
	return nil
}
