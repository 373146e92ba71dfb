package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhartleigh/paydeck/internal/dataset"
	"github.com/mhartleigh/paydeck/internal/model"
)

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query [text...]",
		Short: "Resolve a single query and print the result as JSON",
		Long: `Resolve a free-text query against the stored transactions and print the
structured result. Useful for checking what a dashboard search would do
without running the server.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runQuery,
	}

	cmd.Flags().Bool("demo", false, "resolve against the built-in demo dataset instead of the database")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := slog.Default()
	query := strings.Join(args, " ")

	txns, err := queryDataset(cmd)
	if err != nil {
		return err
	}

	r := initResolver(logger)
	result := r.Resolve(ctx, query, txns)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

func queryDataset(cmd *cobra.Command) ([]model.Transaction, error) {
	if demo, _ := cmd.Flags().GetBool("demo"); demo {
		return dataset.Demo(40), nil
	}

	store, err := initStorage()
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("failed to close storage", "error", closeErr)
		}
	}()

	fs := &fallbackStore{store: store, logger: slog.Default()}
	return fs.ListTransactions(cmd.Context())
}
