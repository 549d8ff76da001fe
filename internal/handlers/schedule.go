package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"osvita-admin/internal/model"
	"osvita-admin/internal/render"
	"osvita-admin/internal/service"
)

type ScheduleHandler struct {
	scheduleService *service.ScheduleService
	renderer        *render.Renderer
	defaultWeeks    int
	logger          *zap.Logger
}

func NewScheduleHandler(scheduleService *service.ScheduleService, renderer *render.Renderer, defaultWeeks int, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		renderer:        renderer,
		defaultWeeks:    defaultWeeks,
		logger:          logger,
	}
}

// GenerateAll обробляє POST /api/schedule/generate-all.
// Порожнє тіло означає горизонт за замовчуванням
func (h *ScheduleHandler) GenerateAll(c *gin.Context) {
	var req struct {
		WeeksAhead *int `json:"weeksAhead"`
	}

	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	weeksAhead := h.defaultWeeks
	if req.WeeksAhead != nil {
		weeksAhead = *req.WeeksAhead
	}

	report, err := h.scheduleService.GenerateAll(c.Request.Context(), weeksAhead)
	if err != nil {
		if errors.Is(err, service.ErrWeeksAheadRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Schedule generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "schedule generation failed"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetSchedule обробляє GET /api/schedule?startDate&endDate&groupId&teacherId.
// Без параметрів повертає поточний тиждень
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	weekStart, weekEnd := service.WeekBounds(time.Now())

	from, ok := dateQuery(c, "startDate", weekStart)
	if !ok {
		return
	}
	to, ok := dateQuery(c, "endDate", weekEnd)
	if !ok {
		return
	}

	filter, ok := lessonFilterQuery(c)
	if !ok {
		return
	}

	grid, err := h.scheduleService.ScheduleGrid(c.Request.Context(), from, to, filter)
	if err != nil {
		if errors.Is(err, service.ErrDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to build schedule grid", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedule"})
		return
	}

	c.JSON(http.StatusOK, grid)
}

// WeekImage обробляє GET /api/schedule/week-image?date&groupId&teacherId
// і віддає PNG-сітку тижня, в який потрапляє date
func (h *ScheduleHandler) WeekImage(c *gin.Context) {
	date, ok := dateQuery(c, "date", time.Now())
	if !ok {
		return
	}

	filter, ok := lessonFilterQuery(c)
	if !ok {
		return
	}

	weekStart, _, lessons, err := h.scheduleService.LessonsForWeek(c.Request.Context(), date, filter)
	if err != nil {
		h.logger.Error("Failed to load week lessons", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedule"})
		return
	}

	img, err := h.renderer.WeekImage(weekStart, lessons)
	if err != nil {
		h.logger.Error("Failed to render week image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render schedule image"})
		return
	}

	c.Data(http.StatusOK, "image/png", img)
}

// dateQuery читає дату з query-параметра у форматі 2006-01-02.
// При помилці пише 400 і повертає ok=false
func dateQuery(c *gin.Context, name string, fallback time.Time) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}

	parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + ", expected YYYY-MM-DD"})
		return time.Time{}, false
	}

	return parsed, true
}

// lessonFilterQuery читає groupId/teacherId з query-параметрів
func lessonFilterQuery(c *gin.Context) (model.LessonFilter, bool) {
	var filter model.LessonFilter

	if raw := c.Query("groupId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid groupId"})
			return filter, false
		}
		filter.GroupID = &id
	}

	if raw := c.Query("teacherId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid teacherId"})
			return filter, false
		}
		filter.TeacherID = &id
	}

	return filter, true
}
