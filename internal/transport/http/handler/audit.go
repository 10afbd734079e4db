package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kosovai-backend/internal/model"
	"kosovai-backend/internal/transport/http/middleware"
)

type LoginEventLister interface {
	ListRecentByUsername(username string, limit int) ([]model.LoginEvent, error)
}

// AuditHandler serves the authenticated user's own login history.
type AuditHandler struct {
	events LoginEventLister
}

func NewAuditHandler(events LoginEventLister) *AuditHandler {
	return &AuditHandler{events: events}
}

func (h *AuditHandler) RecentLogins(c *gin.Context) {
	username := c.GetString(middleware.ContextUsernameKey)
	if username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	events, err := h.events.ListRecentByUsername(username, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list login events failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}
