package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "code [prefix]",
		Short: "Generate random alphanumeric codes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			length, _ := cmd.Flags().GetInt("length")
			count, _ := cmd.Flags().GetInt("count")

			for _, code := range c.app.GenerateCodes(prefix, length, count) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), code)
			}
			return nil
		},
	}
	cmd.Flags().IntP("length", "l", 0, "Number of random characters (default from config)")
	cmd.Flags().IntP("count", "n", 1, "Number of codes to generate")
	return cmd
}

func (c *CLI) newIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "id",
		Short: "Generate a time-ordered unique identifier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := c.app.NewID()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}
