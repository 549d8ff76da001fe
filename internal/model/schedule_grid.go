package model

// ScheduleDay — один день сітки розкладу
type ScheduleDay struct {
	Date    string    `json:"date"` // "2006-01-02"
	Weekday string    `json:"weekday"`
	Lessons []*Lesson `json:"lessons"`
}

// ScheduleGrid — поденна проєкція вже згенерованих занять за період
type ScheduleGrid struct {
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Days      []ScheduleDay `json:"days"`
}
