package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	cfg := folio.ServerConfig{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the registry as read-only JSON",
		Long: `Serve the registry over HTTP for site builds and other consumers.

Endpoints:
  /api/config /api/site /api/locale /api/logo /api/socials /api/jsonld
  /api/pagination?total=N&page=P  /api/schedule?pub=RFC3339
  /healthz /metrics

Examples:
  folio serve -c site.yaml --watch
  FOLIO_ADDR=:8080 folio serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.ConfigPath = opts.configPath
			app, err := folio.NewApp(cfg)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&cfg.Addr, "addr", folio.EnvOr("FOLIO_ADDR", ":3000"), "Listen address")
	cmd.Flags().BoolVarP(&cfg.Watch, "watch", "w", false, "Reload the config file when it changes")
	cmd.Flags().StringVar(&cfg.AssetsDir, "assets", "", "Static asset directory to check at startup")
	cmd.Flags().IntVar(&cfg.RateLimit, "rate-limit", 120, "API requests per IP per minute (negative disables)")
	return cmd
}
