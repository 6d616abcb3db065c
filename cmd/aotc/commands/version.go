package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/aotc/internal/build"
	"go.trai.ch/aotc/internal/ui/style"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				style.Heading.Render("aotc version "+build.Version),
				style.Muted.Render(fmt.Sprintf("(%s, %s)", build.Commit, build.Date)),
			)
		},
	}
}
