package cli

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/altinukshini/gh-forks/internal/forks"
	"github.com/altinukshini/gh-forks/internal/metrics"
	"github.com/altinukshini/gh-forks/internal/web"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the forks table in the browser",
		Long: `Serve an HTML page with a repository form and the forks table.

Routes: / (form), /r/{owner}/{name}?sort=N (table), /api/forks/{owner}/{name}
(JSON), /health and /metrics (Prometheus).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				c.cfg.Addr = addr
			}
			return c.runServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	return cmd
}

func (c *CLI) newServer(ctx context.Context) (*web.Server, error) {
	logger := loggerFromContext(ctx)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewPrometheusRecorder(reg)

	client, err := c.newClient(logger, recorder)
	if err != nil {
		return nil, err
	}
	service := forks.NewService(client, logger, recorder)

	return web.NewServer(service, web.Options{
		Addr:    c.cfg.Addr,
		Logger:  logger,
		Metrics: metrics.HTTPHandler(reg),
	}), nil
}

func (c *CLI) runServe(ctx context.Context) error {
	srv, err := c.newServer(ctx)
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx)
}
