package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/infra/logger"
	"github.com/aalvaropc/unitconv/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts globalOptions
	var sf sessionFlags

	cmd := &cobra.Command{
		Use:          "unitconv",
		Short:        "unitconv: paired from/to unit converter",
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			loaded, err := resolveConfig(opts.configPath)
			if err != nil {
				return err
			}
			cfg := sf.apply(c, loaded.cfg)

			cleanup, _ := logger.Setup(logger.Config{
				Root:  loaded.root,
				Debug: opts.debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			logger.L().Info("session.start",
				"config", loaded.path,
				"category", string(cfg.Category),
				"from_unit", string(cfg.FromUnit),
				"to_unit", string(cfg.ToUnit),
				"precision", cfg.Precision,
			)

			return tui.Run(tui.Deps{
				Config: cfg,
				Logger: logger.L(),
				Debug:  opts.debug,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .unitconv/logs/unitconv.log")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to unitconv.yaml (optional; autodetected if omitted)")

	sf.bind(cmd)
	sf.bindUI(cmd)

	cmd.AddCommand(
		convertCmd(&opts),
		unitsCmd(&opts),
		extractCmd(&opts),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
