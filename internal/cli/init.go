package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
)

const defaultConfigFile = "folio.yaml"

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the built-in configuration to a YAML file",
		Long: `Write the built-in site configuration to a YAML file as a starting point.

Examples:
  folio init
  folio init config/site.yaml --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			return runInit(opts, path, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func runInit(opts *rootOptions, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := folio.WriteConfig(path, folio.Default()); err != nil {
		return err
	}
	opts.out.Success("wrote %s", path)
	return nil
}
