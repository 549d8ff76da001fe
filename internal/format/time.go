package format

import (
	"fmt"
	"time"
)

// FormatDate форматує тільки дату
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatTime форматує тільки час
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatTimeRange форматує діапазон часу
func FormatTimeRange(start, end time.Time) string {
	return fmt.Sprintf("%s-%s", start.Format("15:04"), end.Format("15:04"))
}

// FormatDuration форматує тривалість у хвилинах
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d хв", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d год", hours)
	}
	return fmt.Sprintf("%d год %d хв", hours, mins)
}

// ISOWeekday повертає день тижня у форматі ISO: 1 = понеділок, 7 = неділя
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// WeekdayName повертає назву дня тижня українською за ISO-номером (1-7)
func WeekdayName(weekday int) string {
	names := []string{
		"Понеділок",
		"Вівторок",
		"Середа",
		"Четвер",
		"П'ятниця",
		"Субота",
		"Неділя",
	}
	if weekday >= 1 && weekday <= len(names) {
		return names[weekday-1]
	}
	return "Невідомо"
}

// WeekdayShortName повертає коротку назву дня тижня українською за ISO-номером
func WeekdayShortName(weekday int) string {
	names := []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Нд"}
	if weekday >= 1 && weekday <= len(names) {
		return names[weekday-1]
	}
	return "?"
}

// MonthName повертає назву місяця українською
func MonthName(month time.Month) string {
	names := map[time.Month]string{
		time.January:   "Січень",
		time.February:  "Лютий",
		time.March:     "Березень",
		time.April:     "Квітень",
		time.May:       "Травень",
		time.June:      "Червень",
		time.July:      "Липень",
		time.August:    "Серпень",
		time.September: "Вересень",
		time.October:   "Жовтень",
		time.November:  "Листопад",
		time.December:  "Грудень",
	}
	return names[month]
}
