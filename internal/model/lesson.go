package model

import "time"

type LessonStatus string

const (
	LessonStatusScheduled LessonStatus = "scheduled" // Заняття заплановане
	LessonStatusDone      LessonStatus = "done"      // Заняття проведене
	LessonStatusCanceled  LessonStatus = "canceled"  // Заняття скасоване
)

// Lesson представляє одне конкретне заняття групи у календарну дату.
// На пару (group_id, lesson_date) існує не більше одного запису
type Lesson struct {
	ID            int64        `json:"id"`
	GroupID       int64        `json:"group_id"`
	LessonDate    time.Time    `json:"lesson_date"` // Дата без часу
	StartDatetime time.Time    `json:"start_datetime"`
	EndDatetime   time.Time    `json:"end_datetime"`
	Status        LessonStatus `json:"status"`
	Topic         *string      `json:"topic,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`

	// Додаткові поля для зручності (не з таблиці lessons)
	GroupName string `json:"group_name,omitempty"`
	TeacherID *int64 `json:"teacher_id,omitempty"`
}

// LessonFilter звужує вибірку занять для сітки розкладу
type LessonFilter struct {
	GroupID   *int64
	TeacherID *int64
}
