package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the standard API envelope.
type Response struct {
	Data          interface{} `json:"data,omitempty"`
	Error         *ErrorInfo  `json:"error,omitempty"`
	CorrelationID string      `json:"correlation_id,omitempty"`
}

// ErrorInfo carries a machine-readable code alongside the message.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondData(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Data:          data,
		CorrelationID: GetCorrelationID(c),
	})
}

func respondError(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Error:         &ErrorInfo{Code: code, Message: message},
		CorrelationID: GetCorrelationID(c),
	})
}

func respondOK(c *gin.Context, data interface{}) {
	respondData(c, http.StatusOK, data)
}

func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func respondNotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	respondError(c, http.StatusNotFound, "NOT_FOUND", message)
}

func respondInternalError(c *gin.Context) {
	respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An internal server error occurred")
}
