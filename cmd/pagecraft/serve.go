package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pagecraft-dev/pagecraft/internal/config"
	"github.com/pagecraft-dev/pagecraft/internal/dev"
)

func serveCmd() *cobra.Command {
	var (
		dir  string
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview a built site with live reload",
		Long: `Serve a built output directory over HTTP.

The server watches the directory and reloads connected browsers when a
file changes. Prometheus metrics are exposed on /metrics.

Examples:
  pagecraft serve
  pagecraft serve --dir=public --port=8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(dir, host, port)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to serve (default from pagecraft.json)")
	cmd.Flags().StringVar(&host, "host", "", "Host to bind to (default from pagecraft.json)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from pagecraft.json)")

	return cmd
}

func runServe(dir, host string, port int) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if dir == "" {
		dir = cfg.Output
	}
	if host == "" {
		host = cfg.Dev.Host
	}
	if port == 0 {
		port = cfg.Dev.Port
	}

	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("output directory %s does not exist (build the site first)", dir)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	server := dev.NewServer(dev.ServerConfig{
		Host:   host,
		Port:   port,
		Dir:    dir,
		Ignore: cfg.Dev.Ignore,
		Logger: logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	success("serving %s on http://%s:%d", dir, host, port)
	info("press Ctrl+C to stop")

	return server.Run(ctx)
}
