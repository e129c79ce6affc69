package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/commons/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.print(cmd, build.Info())
		},
	}
}
