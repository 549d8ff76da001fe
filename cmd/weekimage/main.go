package main

import (
	"fmt"
	"os"
	"time"

	"osvita-admin/internal/model"
	"osvita-admin/internal/render"
	"osvita-admin/internal/service"
)

// Утиліта для локальної перевірки рендера тижневої сітки:
// генерує тестові заняття і зберігає картинку в week.png
func main() {
	weekStart, _ := service.WeekBounds(time.Now())

	lessons := []*model.Lesson{
		{
			ID:            1,
			GroupID:       1,
			GroupName:     "Англійська A1",
			LessonDate:    weekStart,
			StartDatetime: weekStart.Add(10 * time.Hour),
			EndDatetime:   weekStart.Add(11 * time.Hour),
			Status:        model.LessonStatusDone,
		},
		{
			ID:            2,
			GroupID:       2,
			GroupName:     "Математика 5 клас",
			LessonDate:    weekStart.AddDate(0, 0, 2),
			StartDatetime: weekStart.AddDate(0, 0, 2).Add(14 * time.Hour),
			EndDatetime:   weekStart.AddDate(0, 0, 2).Add(15*time.Hour + 30*time.Minute),
			Status:        model.LessonStatusScheduled,
			Topic:         strPtr("Дроби"),
		},
		{
			ID:            3,
			GroupID:       1,
			GroupName:     "Англійська A1",
			LessonDate:    weekStart.AddDate(0, 0, 4),
			StartDatetime: weekStart.AddDate(0, 0, 4).Add(17 * time.Hour),
			EndDatetime:   weekStart.AddDate(0, 0, 4).Add(18 * time.Hour),
			Status:        model.LessonStatusCanceled,
		},
	}

	renderer := render.NewRenderer(os.Getenv("FONT_PATH"))

	img, err := renderer.WeekImage(weekStart, lessons)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render week image: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile("week.png", img, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write week.png: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("week.png written")
}

func strPtr(s string) *string {
	return &s
}
