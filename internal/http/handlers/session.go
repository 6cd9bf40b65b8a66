package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type sessionRequest struct {
	Token string `json:"token"`
}

// POST /api/session
//
// Stores the hotel backend bearer token for subsequent gateway calls. Until a
// token is set, gateway operations fail fast without touching the network.
func SetBackendSession(c *gin.Context) {
	var req sessionRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	token := strings.TrimSpace(req.Token)
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	getDeps().Sessions.Set(token)
	c.JSON(http.StatusOK, gin.H{"message": "backend session stored"})
}

// DELETE /api/session
func ClearBackendSession(c *gin.Context) {
	getDeps().Sessions.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "backend session cleared"})
}
