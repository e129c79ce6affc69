package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newNumberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "number <value>",
		Short: "Format a decimal number with a #,##0.00 style pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, _ := cmd.Flags().GetString("pattern")
			out, err := c.app.FormatNumber(args[0], pattern)
			if err != nil {
				return err
			}
			return c.print(cmd, out)
		},
	}
	cmd.Flags().StringP("pattern", "p", "", "Number pattern (default from config)")
	return cmd
}

func (c *CLI) newPageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "page <page> <size>",
		Short: "Print the first and last 1-based item index of a page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := parseIntArg("page", args[0])
			if err != nil {
				return err
			}
			size, err := parseIntArg("size", args[1])
			if err != nil {
				return err
			}
			start, end, err := c.app.PageRange(page, size)
			if err != nil {
				return err
			}
			return c.print(cmd, fmt.Sprintf("%d %d", start, end))
		},
	}
}
