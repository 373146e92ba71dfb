package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/spf13/viper"

	"github.com/mhartleigh/paydeck/internal/config"
	"github.com/mhartleigh/paydeck/internal/dataset"
	"github.com/mhartleigh/paydeck/internal/llm"
	"github.com/mhartleigh/paydeck/internal/model"
	"github.com/mhartleigh/paydeck/internal/resolver"
	"github.com/mhartleigh/paydeck/internal/storage"
)

// initStorage opens the transaction database at the configured path.
func initStorage() (*storage.SQLiteStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "~/.local/share/paydeck/paydeck.db"
	}
	return storage.NewSQLiteStore(config.ExpandPath(dbPath))
}

// initResolver builds the query resolver. A missing API key is not an
// error: the resolver runs in permanent fallback mode without a client.
func initResolver(logger *slog.Logger) *resolver.Resolver {
	cfg := config.LoadLLMConfig()

	var client llm.Client
	if cfg.APIKey != "" {
		var err error
		client, err = llm.NewClient(cfg)
		if err != nil {
			logger.Warn("failed to create assistant client, using local fallback", "error", err)
			client = nil
		}
	}

	timeout := config.LLMTimeout()
	if timeout <= 0 {
		timeout = resolver.DefaultTimeout
	}

	return resolver.New(client, resolver.Config{Timeout: timeout}, logger)
}

// demoFallbackCount is the dataset size substituted when the database has
// not been seeded.
const demoFallbackCount = 40

// fallbackStore wraps the SQLite store and substitutes the generated demo
// dataset while the database is empty, so the dashboard is never blank.
type fallbackStore struct {
	store  *storage.SQLiteStore
	logger *slog.Logger
	warned sync.Once
}

func (f *fallbackStore) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	txns, err := f.store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if len(txns) == 0 {
		f.warned.Do(func() {
			f.logger.Warn("transaction database is empty, serving the generated demo dataset; run 'paydeck seed' to persist it")
		})
		return dataset.Demo(demoFallbackCount), nil
	}
	return txns, nil
}
