package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/selectlist/pkg/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the selectlist version",
		Args:        cobra.NoArgs,
		Annotations: skipConfig(),
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("selectlist %s (commit %s, built %s)\n", ver, version.GetCommit(), version.GetBuildDate())
		},
	}
}
