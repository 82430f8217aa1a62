package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/dayoff/internal/infra/fsworkspace"
)

func initCmd(deps Deps) *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a dayoff.yaml with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, written, err := fsworkspace.NewInitializer().Init(path, force)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
				return err
			}
			if !written {
				fmt.Fprintf(deps.Stdout, "%s already exists (use --force to overwrite)\n", p)
				return nil
			}
			fmt.Fprintf(deps.Stdout, "wrote %s\n", p)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing dayoff.yaml")
	return c
}
