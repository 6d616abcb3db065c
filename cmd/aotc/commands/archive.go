package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/aotc/internal/ui/style"
)

func (c *CLI) newArchiveCmd() *cobra.Command {
	var (
		jobs        int
		from        string
		to          string
		skipClasses bool
	)

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Materialize directory classpath entries as archives in the bitcode cache",
		Long: "Materialize directory classpath entries as archives in the bitcode cache.\n\n" +
			"With --from and --to, write the contents of one directory to an archive instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if from != "" {
				return c.app.WriteArchive(from, to, skipClasses)
			}

			cfg, err := c.resolve(cmd)
			if err != nil {
				return err
			}

			results, err := c.app.Archive(cmd.Context(), cfg, jobs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				_, _ = fmt.Fprintf(out, "%s %s\n", style.Muted.Render(r.Entry.File()), r.Archive)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Number of archives written in parallel (default: number of CPUs)")
	cmd.Flags().StringVar(&from, "from", "", "Directory to archive")
	cmd.Flags().StringVar(&to, "to", "", "Archive to write")
	cmd.Flags().BoolVar(&skipClasses, "skip-classes", false, "Store class files as empty entries")
	cmd.MarkFlagsRequiredTogether("from", "to")

	return cmd
}
