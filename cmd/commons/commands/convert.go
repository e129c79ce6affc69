package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/commons/convert"
	"go.trai.ch/commons/internal/app"
)

func (c *CLI) newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <inputs...>",
		Short: "Convert JSON and YAML documents between formats",
		Long: "Convert files, directories or glob patterns of JSON and YAML documents.\n" +
			"Unchanged inputs whose output still exists are skipped unless --force is set.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, _ := cmd.Flags().GetString("to")
			target, err := convert.ParseFormat(to)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			force, _ := cmd.Flags().GetBool("force")

			return c.app.ConvertFiles(cmd.Context(), args, app.ConvertOptions{
				Target: target,
				OutDir: out,
				Force:  force,
			})
		},
	}
	cmd.Flags().StringP("to", "t", string(convert.FormatYAML), "Target format (json or yaml)")
	cmd.Flags().StringP("out", "o", "", "Output directory (default next to each input)")
	cmd.Flags().BoolP("force", "f", false, "Convert even when the output is up to date")
	return cmd
}

func (c *CLI) newFingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <inputs...>",
		Short: "Print a format independent content hash of JSON and YAML documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sums, err := c.app.Fingerprint(args)
			if err != nil {
				return err
			}
			for _, s := range sums {
				if err := c.print(cmd, fmt.Sprintf("%s  %s", s.Fingerprint, s.Path)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
