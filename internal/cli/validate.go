package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/internal/validate"
)

type validateResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	LogoFile string   `json:"logoFile,omitempty"`
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var assetsDir string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration for integrity errors",
		Long: `Check the configuration the same way the server does at startup.

Examples:
  folio validate
  folio validate -c site.yaml --assets public
  folio validate --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, assetsDir)
		},
	}
	cmd.Flags().StringVar(&assetsDir, "assets", "", "Static asset directory to check logo and ogImage files against")
	return cmd
}

func runValidate(opts *rootOptions, assetsDir string) error {
	res := validateResult{Valid: true}

	reg, err := opts.load()
	if err == nil {
		res.Warnings = reg.Warnings()
		if assetsDir != "" {
			var rep folio.AssetReport
			rep, err = folio.CheckAssets(os.DirFS(assetsDir), reg)
			res.Warnings = append(res.Warnings, rep.Warnings...)
			res.LogoFile = rep.LogoFile
		}
	}
	if err != nil {
		res.Valid = false
		var verr *validate.ValidationError
		if errors.As(err, &verr) {
			for _, e := range verr.Errors() {
				res.Errors = append(res.Errors, e.Error())
			}
		} else {
			res.Errors = []string{err.Error()}
		}
	}

	if opts.jsonOutput {
		if jerr := opts.out.JSON(res); jerr != nil {
			return jerr
		}
	} else {
		for _, w := range res.Warnings {
			opts.out.Warn("%s", w)
		}
		for _, e := range res.Errors {
			opts.out.Error("%s", e)
		}
		if res.Valid {
			opts.out.Success("configuration is valid")
		}
	}

	if !res.Valid {
		return errReported
	}
	return nil
}
