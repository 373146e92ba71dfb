// Package server exposes the query resolver and transaction data over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mhartleigh/paydeck/internal/model"
)

// QueryResolver turns a free-text query into a structured result.
type QueryResolver interface {
	Resolve(ctx context.Context, query string, txns []model.Transaction) model.QueryResult
}

// TransactionStore supplies the transaction dataset.
type TransactionStore interface {
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
}

// Server wires handlers, middleware and routes into a gin engine.
type Server struct {
	resolver QueryResolver
	store    TransactionStore
	logger   *slog.Logger
	engine   *gin.Engine
}

// New builds a Server with the standard middleware chain installed.
func New(resolver QueryResolver, store TransactionStore, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	s := &Server{
		resolver: resolver,
		store:    store,
		logger:   logger,
		engine:   engine,
	}

	engine.Use(Recovery(logger))
	engine.Use(RequestLogger(logger))
	engine.Use(CorrelationID())

	v1 := engine.Group("/api/v1")
	{
		v1.POST("/query", s.handleQuery)

		transactions := v1.Group("/transactions")
		{
			transactions.GET("", s.handleListTransactions)
			transactions.GET("/:reference", s.handleGetTransaction)
		}
	}

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})

	return s
}

// Handler returns the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP server on addr and blocks until it stops.
func (s *Server) Run(addr string) error {
	s.logger.Info("starting HTTP server", "addr", addr)
	return s.engine.Run(addr)
}
