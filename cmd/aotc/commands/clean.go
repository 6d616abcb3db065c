package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/aotc/internal/app"
	"go.trai.ch/aotc/internal/ui/style"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	var opts app.CleanOptions

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove cached bitcode and object files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !opts.Bitcode && !opts.Objects {
				opts = app.CleanOptions{Bitcode: true, Objects: true}
			}

			cfg, err := c.resolve(cmd)
			if err != nil {
				return err
			}

			removed, err := c.app.Clean(cfg, opts)
			if err != nil {
				return err
			}

			for _, dir := range removed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", style.Check, dir)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Bitcode, "bitcode", false, "Remove the bitcode cache only")
	cmd.Flags().BoolVar(&opts.Objects, "objects", false, "Remove the object cache only")

	return cmd
}
