package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/talentswap-backend/internal/http/response"
)

const healthPingTimeout = 2 * time.Second

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler { return &HealthHandler{db: db} }

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// GET /healthcheck
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()
	if err := h.ping(ctx); err != nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.APIError{
			Message: "database unavailable",
			Code:    "DATABASE_UNAVAILABLE",
		})
		return
	}
	response.RespondOK(c, HealthResponse{Status: "ok", Database: "up"})
}

func (h *HealthHandler) ping(ctx context.Context) error {
	if h.db == nil {
		return gorm.ErrInvalidDB
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
