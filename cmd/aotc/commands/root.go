// Package commands implements the CLI commands for aotc.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/aotc/internal/adapters/detector"
	"go.trai.ch/aotc/internal/adapters/logger"
	"go.trai.ch/aotc/internal/app"
	"go.trai.ch/aotc/internal/build"
	"go.trai.ch/aotc/internal/core/domain"
	"go.trai.ch/aotc/internal/core/ports"
	"go.trai.ch/zerr"
)

// configurableLogger is implemented by loggers whose output can be tuned from flags.
type configurableLogger interface {
	SetFormat(f logger.Format)
	SetVerbose(verbose bool)
}

// CLI represents the command line interface for aotc.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
	inputs  *inputFlags
}

// New creates a new CLI instance with the given app.
func New(a *app.App, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "aotc",
		Short:         "Resolve build configuration and class archives for ahead-of-time compilation",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// Persistent flags go first so -v stays with --verbose and --version takes no shorthand.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug messages")
	rootCmd.PersistentFlags().String("log-format", "auto", "Log format: auto, pretty, plain or json")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
		inputs:  registerInputFlags(rootCmd.PersistentFlags()),
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentPreRunE = c.configureLogger

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newArchiveCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

func (c *CLI) configureLogger(cmd *cobra.Command, _ []string) error {
	lg, ok := c.logger.(configurableLogger)
	if !ok {
		return nil
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	lg.SetVerbose(verbose)

	flag, _ := cmd.Flags().GetString("log-format")
	format, ok := detector.ResolveFormat(detector.DetectEnvironment(), flag)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrInvalidLogFormat, flag), "log-format", flag)
	}

	switch format {
	case detector.FormatJSON:
		lg.SetFormat(logger.FormatJSON)
	case detector.FormatPlain:
		lg.SetFormat(logger.FormatPlain)
	default:
		lg.SetFormat(logger.FormatPretty)
	}
	return nil
}

func (c *CLI) resolve(cmd *cobra.Command) (*domain.Config, error) {
	opts, err := c.inputs.resolveOptions(cmd.Flags())
	if err != nil {
		return nil, err
	}
	return c.app.Resolve(cmd.Context(), opts)
}
