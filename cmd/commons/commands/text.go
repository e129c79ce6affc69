package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newTextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Transform text",
	}

	camel := &cobra.Command{
		Use:   "camel <words...>",
		Short: "Convert words to camel case",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			upper, _ := cmd.Flags().GetBool("upper")
			return c.print(cmd, c.app.Camel(strings.Join(args, " "), upper))
		},
	}
	camel.Flags().BoolP("upper", "u", false, "Capitalize the first letter")

	cmd.AddCommand(
		camel,
		c.newTextTransformCmd("freetext", "Lower-case text and collapse white space", c.app.FreeText),
		c.newTextTransformCmd("capitalize", "Upper-case the first letter", c.app.Capitalize),
		c.newTextTransformCmd("uncapitalize", "Lower-case the first letter", c.app.Uncapitalize),
		&cobra.Command{
			Use:   "format <pattern> [args...]",
			Short: "Substitute {0}, {1}, ... placeholders in pattern",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.print(cmd, c.app.FormatText(args[0], args[1:]))
			},
		},
	)
	return cmd
}

func (c *CLI) newTextTransformCmd(use, short string, fn func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <text...>",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.print(cmd, fn(strings.Join(args, " ")))
		},
	}
}

func (c *CLI) print(cmd *cobra.Command, s string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}
