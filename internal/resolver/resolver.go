// Package resolver turns free-text queries into typed dashboard results. It
// orchestrates the remote classifier under a timeout, corrects its aggregates
// against the full dataset, and falls back to deterministic local matching
// when the remote call misbehaves.
package resolver

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/mhartleigh/paydeck/internal/dataset"
	"github.com/mhartleigh/paydeck/internal/llm"
	"github.com/mhartleigh/paydeck/internal/model"
)

// DefaultTimeout bounds how long a single remote classification may take.
const DefaultTimeout = 15 * time.Second

// Config holds configuration for the resolver.
type Config struct {
	Timeout time.Duration
}

// Resolver is the public entry point for query-intent resolution. Every call
// returns a structurally valid QueryResult; remote failures degrade to the
// local fallback and are never surfaced to the caller.
type Resolver struct {
	client  llm.Client
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a resolver around the given client. A nil client puts the
// resolver into permanent fallback mode for the session; this is how a
// missing credential is handled, detected once at startup rather than
// per query.
func New(client llm.Client, cfg Config, logger *slog.Logger) *Resolver {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	if client == nil {
		logger.Warn("no assistant credential configured, every query will use the local fallback")
	}

	return &Resolver{
		client:  client,
		timeout: timeout,
		logger:  logger,
	}
}

type remoteOutcome struct {
	resp *llm.IntentResponse
	err  error
}

// Resolve classifies the query against the dataset and returns exactly one
// typed result. An empty or whitespace-only query resets to the full
// unfiltered list without any remote call.
func (r *Resolver) Resolve(ctx context.Context, query string, txns []model.Transaction) model.QueryResult {
	data := dataset.New(txns)

	query = strings.TrimSpace(query)
	if query == "" {
		return model.QueryResult{Type: model.ResultFilter, FilteredIDs: data.IDs()}
	}

	if r.client == nil {
		return r.fallback(query, data)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	prompt := llm.BuildPrompt(query, data.Sample(dataset.SampleLimit))

	// Race the remote call against the deadline. The buffered channel lets
	// the goroutine finish after a timeout without leaking; cancel aborts the
	// in-flight request so a late result is discarded, not applied.
	outcomes := make(chan remoteOutcome, 1)
	go func() {
		resp, err := r.client.ResolveIntent(ctx, prompt)
		outcomes <- remoteOutcome{resp: resp, err: err}
	}()

	var out remoteOutcome
	select {
	case out = <-outcomes:
	case <-ctx.Done():
		r.logger.Warn("assistant call timed out, using fallback",
			"query", query,
			"timeout", r.timeout)
		return r.fallback(query, data)
	}

	if out.err != nil {
		r.logger.Warn("assistant call failed, using fallback",
			"query", query,
			"error", out.err)
		return r.fallback(query, data)
	}

	result, err := out.resp.ToResult()
	if err != nil {
		r.logger.Warn("assistant returned unusable payload, using fallback",
			"query", query,
			"error", err)
		return r.fallback(query, data)
	}

	applyGroundTruth(&result, data)

	r.logger.Info("query resolved",
		"query", query,
		"result_type", result.Type)

	return result
}
