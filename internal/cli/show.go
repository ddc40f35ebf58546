package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults and environment overrides,
with social link titles resolved.

Examples:
  folio show
  folio show --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := opts.load()
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				format = "json"
			}
			switch format {
			case "yaml", "":
				return opts.out.YAML(reg.Config())
			case "json":
				return opts.out.JSON(reg.Config())
			default:
				return fmt.Errorf("unknown format %q (want yaml or json)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml or json")
	return cmd
}
