package render

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osvita-admin/internal/model"
)

func strPtr(s string) *string { return &s }

func TestWeekImageProducesPNG(t *testing.T) {
	weekStart := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

	lessons := []*model.Lesson{
		{
			ID:            1,
			GroupID:       1,
			GroupName:     "Англійська A1",
			LessonDate:    weekStart,
			StartDatetime: weekStart.Add(10 * time.Hour),
			EndDatetime:   weekStart.Add(11 * time.Hour),
			Status:        model.LessonStatusScheduled,
		},
		{
			ID:            2,
			GroupID:       2,
			GroupName:     "Математика",
			LessonDate:    weekStart.AddDate(0, 0, 2),
			StartDatetime: weekStart.AddDate(0, 0, 2).Add(14 * time.Hour),
			EndDatetime:   weekStart.AddDate(0, 0, 2).Add(15*time.Hour + 30*time.Minute),
			Status:        model.LessonStatusDone,
			Topic:         strPtr("Дроби та відсотки, повторення матеріалу"),
		},
		{
			ID:            3,
			GroupID:       1,
			LessonDate:    weekStart.AddDate(0, 0, 5),
			StartDatetime: weekStart.AddDate(0, 0, 5).Add(9 * time.Hour),
			EndDatetime:   weekStart.AddDate(0, 0, 5).Add(10 * time.Hour),
			Status:        model.LessonStatusCanceled,
		},
	}

	renderer := NewRenderer("")

	img, err := renderer.WeekImage(weekStart, lessons)
	require.NoError(t, err)
	require.NotEmpty(t, img)

	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Equal(t, imageWidth, cfg.Width)
	assert.Equal(t, imageHeight, cfg.Height)
}

func TestWeekImageEmptyWeek(t *testing.T) {
	weekStart := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

	renderer := NewRenderer("")

	img, err := renderer.WeekImage(weekStart, nil)
	require.NoError(t, err)

	_, err = png.DecodeConfig(bytes.NewReader(img))
	assert.NoError(t, err)
}

func TestCalculateHourRange(t *testing.T) {
	weekStart := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

	hours := calculateHourRange([]*model.Lesson{
		{
			StartDatetime: weekStart.Add(10 * time.Hour),
			EndDatetime:   weekStart.Add(11*time.Hour + 30*time.Minute),
		},
	})

	assert.Equal(t, 8, hours.start) // 10 - відступ 2
	assert.Equal(t, 14, hours.end)  // 12 (заокруглено вгору) + відступ 2
	assert.Equal(t, 7, hours.total)
}
