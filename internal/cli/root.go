// Package cli implements the column-mapper command line.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"column-mapper/internal/logger"
)

type app struct {
	cfg Config
	log *zap.SugaredLogger
}

// NewRootCmd builds the column-mapper command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: logger.Nop()}

	root := &cobra.Command{
		Use:   "column-mapper",
		Short: "Inspect and check dataset column mappings",
		Long: `column-mapper maps dataset column names onto the roles used by the
time-series pipeline (id_col, time_col, flux_col, err_col, band_col).

Examples:
  column-mapper presets             # list known mappings
  column-mapper show ZTF            # print the ZTF mapping
  column-mapper check mapping.yaml  # validate a mapping file`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (-v, -vv)")

	root.AddCommand(
		a.presetsCmd(),
		a.showCmd(),
		a.checkCmd(),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	a.cfg = cfg

	verbosity, _ := cmd.Flags().GetCount("verbose")
	level := logger.VerbosityToLevel(verbosity)

	if cfg.LogLevel != "" {
		level, err = logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
	}

	a.log = logger.New(cmd.ErrOrStderr(), level, cfg.LogJSON)
	a.log.Debugw("configuration loaded", "log_level", level.String(), "format", cfg.Format)

	return nil
}
