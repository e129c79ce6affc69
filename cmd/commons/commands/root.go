// Package commands implements the CLI commands for commons.
package commands

import (
	"context"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/commons/internal/app"
	"go.trai.ch/commons/internal/build"
	"go.trai.ch/commons/internal/core/domain"
	"go.trai.ch/commons/internal/core/ports"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for commons.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app and logger.
func New(a *app.App, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "commons",
		Short:         "Everyday helpers for text, numbers, codes and JSON/YAML documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write log output as JSON")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if enable, _ := cmd.Flags().GetBool("json-logs"); enable {
			if jl, ok := c.logger.(jsonLogger); ok {
				jl.SetJSON(true)
			}
		}
		path, _ := cmd.Flags().GetString("config")
		return c.app.LoadConfig(path)
	}

	rootCmd.AddCommand(c.newCodeCmd())
	rootCmd.AddCommand(c.newIDCmd())
	rootCmd.AddCommand(c.newTextCmd())
	rootCmd.AddCommand(c.newNumberCmd())
	rootCmd.AddCommand(c.newPageCmd())
	rootCmd.AddCommand(c.newConvertCmd())
	rootCmd.AddCommand(c.newFingerprintCmd())
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
}

func parseIntArg(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrInvalidArgument.Error()), name, value)
	}
	return n, nil
}
