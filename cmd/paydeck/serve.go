package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mhartleigh/paydeck/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard API server",
		Long: `Start the HTTP server that backs the payments dashboard. It exposes the
query endpoint plus transaction listing and lookup.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := slog.Default()

	store, err := initStorage()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Warn("failed to close storage", "error", closeErr)
		}
	}()

	r := initResolver(logger)
	srv := server.New(r, &fallbackStore{store: store, logger: logger}, logger)

	return srv.Run(viper.GetString("server.addr"))
}
