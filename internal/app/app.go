package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// LivenessProbe answers whether a backing service is reachable.
type LivenessProbe interface {
	IsAlive(ctx context.Context) bool
}

// Counter reports the number of stored records.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// Handler serves the service-level status and stats endpoints.
type Handler struct {
	sessions LivenessProbe
	database LivenessProbe
	users    Counter
	files    Counter
}

func NewHandler(sessions, database LivenessProbe, users, files Counter) *Handler {
	return &Handler{
		sessions: sessions,
		database: database,
		users:    users,
		files:    files,
	}
}

// Status handles GET /status.
func (h *Handler) Status(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"redis": h.sessions.IsAlive(ctx),
		"db":    h.database.IsAlive(ctx),
	})
}

// Stats handles GET /stats.
func (h *Handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	users, err := h.users.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	files, err := h.files.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "files": files})
}
