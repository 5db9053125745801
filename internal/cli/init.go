package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/infra/fsconfig"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter unitconv.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			abs, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitConfig(fsconfig.NewInitializer())
			if err := uc.Execute(abs, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Config ready at %s\n", filepath.Join(abs, "unitconv.yaml"))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Directory to write unitconv.yaml into")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing unitconv.yaml")
	return cmd
}
