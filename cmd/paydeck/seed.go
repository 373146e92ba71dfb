package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mhartleigh/paydeck/internal/dataset"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with a demo dataset",
		Long: `Generate a deterministic demo dataset and store it in the transaction
database. Existing records with the same IDs are replaced, so seeding is
safe to repeat.`,
		RunE: runSeed,
	}

	cmd.Flags().IntP("count", "n", 40, "number of transactions to generate")
	_ = viper.BindPFlag("seed.count", cmd.Flags().Lookup("count"))

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := slog.Default()

	count := viper.GetInt("seed.count")
	if count <= 0 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	store, err := initStorage()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Warn("failed to close storage", "error", closeErr)
		}
	}()

	txns := dataset.Demo(count)

	bar := progressbar.NewOptions(len(txns),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Seeding transactions..."),
	)

	const batchSize = 10
	for start := 0; start < len(txns); start += batchSize {
		end := start + batchSize
		if end > len(txns) {
			end = len(txns)
		}
		if err := store.SaveTransactions(ctx, txns[start:end]); err != nil {
			return fmt.Errorf("failed to save transactions: %w", err)
		}
		_ = bar.Add(end - start)
	}

	total, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count transactions: %w", err)
	}

	logger.Info("seed complete", "generated", len(txns), "total_in_db", total)
	return nil
}
