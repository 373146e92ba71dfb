package server

import (
	"github.com/gin-gonic/gin"

	"github.com/mhartleigh/paydeck/internal/dataset"
)

// QueryRequest is the body of POST /api/v1/query.
type QueryRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleQuery(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Error("Invalid request body", "error", err)
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	txns, err := s.store.ListTransactions(c.Request.Context())
	if err != nil {
		s.logger.Error("Failed to load transactions", "error", err)
		respondInternalError(c)
		return
	}

	result := s.resolver.Resolve(c.Request.Context(), req.Query, txns)
	respondOK(c, result)
}

func (s *Server) handleListTransactions(c *gin.Context) {
	txns, err := s.store.ListTransactions(c.Request.Context())
	if err != nil {
		s.logger.Error("Failed to load transactions", "error", err)
		respondInternalError(c)
		return
	}

	if c.Query("overdue") == "true" {
		txns = dataset.New(txns).Overdue()
	}

	respondOK(c, txns)
}

func (s *Server) handleGetTransaction(c *gin.Context) {
	ref := c.Param("reference")

	txns, err := s.store.ListTransactions(c.Request.Context())
	if err != nil {
		s.logger.Error("Failed to load transactions", "error", err)
		respondInternalError(c)
		return
	}

	txn, ok := dataset.New(txns).ByReference(ref)
	if !ok {
		respondNotFound(c, "Transaction not found")
		return
	}

	respondOK(c, txn)
}
