// Package cli implements the folio command line.
package cli

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	folog "github.com/eringen/folio/internal/log"
	"github.com/eringen/folio/internal/output"
)

// errReported marks failures already printed for the user; Execute only
// sets the exit code for them.
var errReported = errors.New("reported")

type rootOptions struct {
	configPath string
	jsonOutput bool
	verbose    bool
	version    string

	out *output.Printer
}

// load builds the registry from the --config flag.
func (o *rootOptions) load() (*folio.Registry, error) {
	return folio.LoadRegistry(o.configPath)
}

// NewRootCmd builds the command tree writing user output to out.
func NewRootCmd(version string, out io.Writer) *cobra.Command {
	opts := &rootOptions{
		version: version,
		out:     output.New(out),
	}

	cmd := &cobra.Command{
		Use:   "folio",
		Short: "Site configuration registry for a blog and portfolio",
		Long: `folio validates and serves the configuration of a personal blog and
portfolio site: metadata, locale, logo settings and social links.

The config file is YAML with site, locale, logo and socials sections.
FOLIO_* environment variables override individual fields.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := ""
			if opts.verbose {
				level = "debug"
			}
			folog.Configure(folog.Config{Level: level, Pretty: true})
		},
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", folio.EnvOr("FOLIO_CONFIG", ""), "Path to the YAML config (default: built-in site config)")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newValidateCmd(opts),
		newShowCmd(opts),
		newSocialsCmd(opts),
		newInitCmd(opts),
		newServeCmd(opts),
		newVersionCmd(opts),
	)
	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute(version string) int {
	cmd := NewRootCmd(version, os.Stdout)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			output.New(os.Stderr).Error("%v", err)
		}
		return 1
	}
	return 0
}
