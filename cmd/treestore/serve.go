package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/treestore-dev/treestore/internal/config"
	"github.com/treestore-dev/treestore/pkg/server"
	"github.com/treestore-dev/treestore/pkg/store"
)

func serveCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the treestore server",
		Long: `Start the HTTP/WebSocket server around one store.

Configuration comes from treestore.json in the working directory (or --dir),
overridden by TREESTORE_* environment variables. The store's initial state is
read from the configured seed file, or starts as an empty object.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(dir)
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: parseLogLevel(cfg.LogLevel),
			}))

			initial, err := loadSeed(cfg.SeedFile)
			if err != nil {
				return err
			}

			metrics := store.NewMetrics(store.WithNamespace(cfg.MetricsNamespace))

			st := store.New(initial,
				store.WithLogger(logger),
				store.WithMetrics(metrics),
			)
			defer st.Close()

			srv := server.New(st, server.WithLogger(logger))

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.Run(ctx, cfg.Addr)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "directory containing treestore.json")

	return cmd
}

// loadSeed reads the initial state tree from a JSON file. An empty path means
// an empty object root.
func loadSeed(path string) (any, error) {
	if path == "" {
		return map[string]any{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var initial any
	if err := json.Unmarshal(data, &initial); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return initial, nil
}

func parseLogLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
