package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"osvita-admin/internal/format"
	"osvita-admin/internal/model"
	"osvita-admin/internal/render"
	"osvita-admin/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubGroupStore struct {
	groups []*model.Group
}

func (s *stubGroupStore) GetActive(_ context.Context) ([]*model.Group, error) {
	var active []*model.Group
	for _, g := range s.groups {
		if g.IsActive() {
			active = append(active, g)
		}
	}
	return active, nil
}

func (s *stubGroupStore) List(_ context.Context) ([]*model.Group, error) {
	return s.groups, nil
}

type stubLessonStore struct {
	lessons map[string]*model.Lesson
	nextID  int64
}

func newStubLessonStore() *stubLessonStore {
	return &stubLessonStore{lessons: make(map[string]*model.Lesson)}
}

func (s *stubLessonStore) key(groupID int64, date time.Time) string {
	return fmt.Sprintf("%d|%s", groupID, date.Format("2006-01-02"))
}

func (s *stubLessonStore) Exists(_ context.Context, groupID int64, date time.Time) (bool, error) {
	_, ok := s.lessons[s.key(groupID, date)]
	return ok, nil
}

func (s *stubLessonStore) Create(_ context.Context, lesson *model.Lesson) error {
	s.nextID++
	lesson.ID = s.nextID
	stored := *lesson
	s.lessons[s.key(lesson.GroupID, lesson.LessonDate)] = &stored
	return nil
}

func (s *stubLessonStore) GetRange(_ context.Context, from, to time.Time, filter model.LessonFilter) ([]*model.Lesson, error) {
	var result []*model.Lesson
	for _, lesson := range s.lessons {
		if lesson.LessonDate.Before(from) || !lesson.LessonDate.Before(to) {
			continue
		}
		if filter.GroupID != nil && lesson.GroupID != *filter.GroupID {
			continue
		}
		result = append(result, lesson)
	}
	return result, nil
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

// testGroup генерується щотижня в сьогоднішній день тижня
func testGroup(id int64) *model.Group {
	return &model.Group{
		ID:              id,
		Name:            fmt.Sprintf("Група %d", id),
		WeeklyDay:       intPtr(format.ISOWeekday(time.Now())),
		StartTime:       strPtr("10:00"),
		DurationMinutes: 60,
		Status:          model.GroupStatusActive,
	}
}

func newTestRouter(groups []*model.Group, lessons *stubLessonStore) *gin.Engine {
	logger := zap.NewNop()
	scheduleService := service.NewScheduleService(&stubGroupStore{groups: groups}, lessons, logger)

	router := gin.New()
	router.GET("/healthcheck", HealthCheck)

	scheduleHandler := NewScheduleHandler(scheduleService, render.NewRenderer(""), service.DefaultWeeksAhead, logger)
	groupHandler := NewGroupHandler(scheduleService, logger)

	api := router.Group("/api")
	api.POST("/schedule/generate-all", scheduleHandler.GenerateAll)
	api.GET("/schedule", scheduleHandler.GetSchedule)
	api.GET("/schedule/week-image", scheduleHandler.WeekImage)
	api.GET("/groups", groupHandler.List)

	return router
}

func doRequest(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(nil, newStubLessonStore())

	rec := doRequest(router, http.MethodGet, "/healthcheck", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGenerateAllEndpoint(t *testing.T) {
	router := newTestRouter([]*model.Group{testGroup(1)}, newStubLessonStore())

	rec := doRequest(router, http.MethodPost, "/api/schedule/generate-all", []byte(`{"weeksAhead": 2}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var report model.GenerationReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.Equal(t, 2, report.WeeksAhead)
	assert.Equal(t, 2, report.TotalGenerated)
	assert.Equal(t, 0, report.TotalSkipped)
	require.Len(t, report.Groups, 1)
	assert.Equal(t, int64(1), report.Groups[0].GroupID)
	assert.NotEmpty(t, report.Summary)
}

func TestGenerateAllEndpointDefaultHorizon(t *testing.T) {
	router := newTestRouter([]*model.Group{testGroup(1)}, newStubLessonStore())

	// Порожнє тіло — горизонт за замовчуванням
	rec := doRequest(router, http.MethodPost, "/api/schedule/generate-all", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var report model.GenerationReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, service.DefaultWeeksAhead, report.WeeksAhead)
}

func TestGenerateAllEndpointValidation(t *testing.T) {
	router := newTestRouter([]*model.Group{testGroup(1)}, newStubLessonStore())

	for _, body := range []string{`{"weeksAhead": 0}`, `{"weeksAhead": 53}`, `{"weeksAhead": -3}`} {
		rec := doRequest(router, http.MethodPost, "/api/schedule/generate-all", []byte(body))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body=%s", body)
	}

	rec := doRequest(router, http.MethodPost, "/api/schedule/generate-all", []byte(`{not json`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetScheduleEndpoint(t *testing.T) {
	lessons := newStubLessonStore()
	router := newTestRouter([]*model.Group{testGroup(1)}, lessons)

	rec := doRequest(router, http.MethodPost, "/api/schedule/generate-all", []byte(`{"weeksAhead": 1}`))
	require.Equal(t, http.StatusOK, rec.Code)

	start, end := service.WeekBounds(time.Now())
	path := fmt.Sprintf("/api/schedule?startDate=%s&endDate=%s",
		start.Format("2006-01-02"), end.Format("2006-01-02"))

	rec = doRequest(router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var grid model.ScheduleGrid
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grid))

	require.Len(t, grid.Days, 7)
	total := 0
	for _, day := range grid.Days {
		total += len(day.Lessons)
	}
	assert.Equal(t, 1, total)
}

func TestGetScheduleEndpointBadParams(t *testing.T) {
	router := newTestRouter(nil, newStubLessonStore())

	rec := doRequest(router, http.MethodGet, "/api/schedule?startDate=03.04.2024", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/schedule?groupId=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/schedule?startDate=2024-03-10&endDate=2024-03-04", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWeekImageEndpoint(t *testing.T) {
	lessons := newStubLessonStore()
	router := newTestRouter([]*model.Group{testGroup(1)}, lessons)

	rec := doRequest(router, http.MethodPost, "/api/schedule/generate-all", []byte(`{"weeksAhead": 1}`))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/schedule/week-image", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestListGroupsEndpoint(t *testing.T) {
	router := newTestRouter([]*model.Group{testGroup(1), testGroup(2)}, newStubLessonStore())

	rec := doRequest(router, http.MethodGet, "/api/groups", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Groups []*model.Group `json:"groups"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Groups, 2)
}
