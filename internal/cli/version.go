package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/dayoff/internal/buildinfo"
)

func versionCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(deps.Stdout, buildinfo.String())
			return err
		},
	}
}
