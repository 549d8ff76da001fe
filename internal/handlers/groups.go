package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"osvita-admin/internal/service"
)

type GroupHandler struct {
	scheduleService *service.ScheduleService
	logger          *zap.Logger
}

func NewGroupHandler(scheduleService *service.ScheduleService, logger *zap.Logger) *GroupHandler {
	return &GroupHandler{scheduleService: scheduleService, logger: logger}
}

// List обробляє GET /api/groups — довідник груп для фільтрів розкладу
func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.scheduleService.Groups(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list groups", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load groups"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}
