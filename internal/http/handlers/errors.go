package handlers

import (
	"net/http"

	"backoffice/internal/domain"
	"backoffice/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads for new handlers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	resp := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}
	reqID := middleware.GetRequestID(c)
	if reqID != "" {
		c.JSON(status, gin.H{
			"error":      resp.Error,
			"code":       resp.Code,
			"details":    resp.Details,
			"request_id": reqID,
			"message":    message,
		})
		return
	}
	c.JSON(status, resp)
}

// RespondDomainError maps domain errors to HTTP responses. Backend-side
// failures surface the backend's own message so the operator sees why.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	case domain.IsExportInProgress(err):
		respondError(c, http.StatusConflict, "export_in_progress", err.Error(), nil)
	case domain.IsUnauthenticated(err):
		respondError(c, http.StatusServiceUnavailable, "backend_session_missing", err.Error(), nil)
	case domain.IsTimeout(err):
		respondError(c, http.StatusGatewayTimeout, "backend_timeout", err.Error(), nil)
	case domain.IsMalformedResponse(err):
		respondError(c, http.StatusBadGateway, "malformed_backend_response", err.Error(), nil)
	case domain.IsRemote(err):
		respondError(c, http.StatusBadGateway, "backend_error", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
