package model

import (
	"time"
)

type GroupStatus string

const (
	GroupStatusActive   GroupStatus = "active"   // Група навчається, розклад генерується
	GroupStatusGraduate GroupStatus = "graduate" // Група випустилась
	GroupStatusInactive GroupStatus = "inactive" // Група призупинена
)

// Group представляє шаблон регулярної групи: день тижня + час початку,
// з яких генеруються конкретні заняття
type Group struct {
	ID              int64       `json:"id"`
	Name            string      `json:"name" validate:"required"`
	CourseID        *int64      `json:"course_id,omitempty"`
	TeacherID       *int64      `json:"teacher_id,omitempty"`
	WeeklyDay       *int        `json:"weekly_day" validate:"omitempty,min=1,max=7"` // 1 = понеділок, 7 = неділя (ISO)
	StartTime       *string     `json:"start_time" validate:"omitempty,len=5"`       // "HH:MM"
	DurationMinutes int         `json:"duration_minutes" validate:"omitempty,min=1"`
	Status          GroupStatus `json:"status"`
	StartDate       *time.Time  `json:"start_date,omitempty"` // Нижня межа генерації, якщо задана
	MonthlyPrice    int         `json:"monthly_price"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// IsActive повертає true, якщо для групи потрібно генерувати розклад
func (g *Group) IsActive() bool {
	return g.Status == GroupStatusActive
}
