package render

import (
	"bytes"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"osvita-admin/internal/format"
	"osvita-admin/internal/model"
)

// Константи розмірів і відступів
const (
	imageWidth         = 1400
	imageHeight        = 900
	headerHeight       = 100
	leftLabelsWidth    = 80
	legendWidth        = 160
	dayPaddingX        = 8
	minLessonHeight    = 8.0
	lessonBorderRadius = 6.0
	shadowOffset       = 3.0
	totalDaysInWeek    = 7
	hourPaddingTop     = 2
	hourPaddingBot     = 2
)

// Константи шрифтів
const (
	titleFontSize      = 25.0
	dayFontSize        = 22.0
	hourLabelFontSize  = 16.0
	lessonFontSize     = 15.0
	legendItemFontSize = 13.0
)

// Колірна схема
var (
	bgColor          = color.RGBA{245, 246, 248, 255}
	textColor        = color.RGBA{80, 85, 90, 220}
	hourLabelColor   = color.RGBA{110, 115, 120, 200}
	hourLineColor    = color.NRGBA{150, 150, 150, 255}
	todayBgColor     = color.NRGBA{255, 99, 71, 125}
	evenDayColor     = color.NRGBA{240, 240, 240, 255}
	oddDayColor      = color.NRGBA{220, 220, 220, 255}
	currentTimeColor = color.NRGBA{255, 80, 80, 200}

	lessonScheduledColor = color.RGBA{133, 193, 85, 220}  // Зелений — заплановане
	lessonDoneColor      = color.RGBA{120, 170, 220, 230} // Блакитний — проведене
	lessonCanceledColor  = color.RGBA{158, 158, 158, 200} // Сірий — скасоване
	lessonTextColor      = color.RGBA{20, 24, 28, 230}
	lessonShadowColor    = color.RGBA{0, 0, 0, 20}

	legendItemColor = color.RGBA{70, 74, 78, 220}
)

// weekBounds містить межі тижня
type weekBounds struct {
	start time.Time
	end   time.Time
}

// hourRange містить діапазон годин для відображення
type hourRange struct {
	start int
	end   int
	total int
}

// Renderer малює тижневу сітку розкладу в PNG.
// Шрифт завантажується з fontPath; без нього використовується
// вбудований bitmap-шрифт
type Renderer struct {
	fontPath string
}

func NewRenderer(fontPath string) *Renderer {
	return &Renderer{fontPath: fontPath}
}

func (r *Renderer) loadFont(dc *gg.Context, size float64) {
	if r.fontPath != "" {
		if err := dc.LoadFontFace(r.fontPath, size); err == nil {
			return
		}
	}
	dc.SetFontFace(basicfont.Face7x13)
}

// WeekImage малює тиждень, що починається з weekStart (понеділок),
// із заняттями, розкладеними по днях і годинах
func (r *Renderer) WeekImage(weekStart time.Time, lessons []*model.Lesson) ([]byte, error) {
	week := weekBounds{start: dateOnly(weekStart), end: dateOnly(weekStart).AddDate(0, 0, 6)}
	today := dateOnly(time.Now())
	highlightToday := !today.Before(week.start) && !today.After(week.end)

	lessonsByDay := groupLessonsByDay(lessons)
	hours := calculateHourRange(lessons)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()

	dayWidth := (imageWidth - leftLabelsWidth - legendWidth) / totalDaysInWeek
	dayHeight := imageHeight - headerHeight
	cellHeight := float64(dayHeight) / float64(hours.total)

	r.drawHeader(dc, week)
	r.drawHourLabels(dc, hours, cellHeight)
	r.drawDays(dc, week, today, highlightToday, lessonsByDay, hours, dayWidth, dayHeight, cellHeight)
	r.drawCurrentTimeLine(dc, highlightToday, hours, cellHeight, dayWidth)
	r.drawLegend(dc, dayWidth)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// groupLessonsByDay групує заняття по датах
func groupLessonsByDay(lessons []*model.Lesson) map[string][]*model.Lesson {
	byDay := make(map[string][]*model.Lesson)
	for _, lesson := range lessons {
		key := lesson.LessonDate.Format("2006-01-02")
		byDay[key] = append(byDay[key], lesson)
	}
	return byDay
}

// calculateHourRange визначає діапазон годин для відображення
func calculateHourRange(lessons []*model.Lesson) hourRange {
	minHour := 24
	maxHour := 0

	for _, lesson := range lessons {
		startH := lesson.StartDatetime.Hour()
		endH := lesson.EndDatetime.Hour()
		if lesson.EndDatetime.Minute() > 0 {
			endH++
		}
		if startH < minHour {
			minHour = startH
		}
		if endH > maxHour {
			maxHour = endH
		}
	}

	// Порожній тиждень — показуємо робочий день
	if minHour == 24 {
		minHour = 8
		maxHour = 20
	}

	startHour := minHour - hourPaddingTop
	endHour := maxHour + hourPaddingBot
	if startHour < 0 {
		startHour = 0
	}
	if endHour > 23 {
		endHour = 23
	}

	return hourRange{
		start: startHour,
		end:   endHour,
		total: endHour - startHour + 1,
	}
}

// drawHeader малює заголовок з назвою місяця
func (r *Renderer) drawHeader(dc *gg.Context, week weekBounds) {
	startMonth := week.start.Month()
	endMonth := week.end.Month()

	title := format.MonthName(startMonth)
	if startMonth != endMonth {
		title += " - " + format.MonthName(endMonth)
	}

	r.loadFont(dc, titleFontSize)
	dc.SetColor(textColor)
	w, h := dc.MeasureString(title)
	dc.DrawStringAnchored(title, w/2, float64(headerHeight)/8+h/2, 0, 0)
}

// drawHourLabels малює колонку з годинами ліворуч
func (r *Renderer) drawHourLabels(dc *gg.Context, hours hourRange, cellHeight float64) {
	r.loadFont(dc, hourLabelFontSize)
	dc.SetColor(hourLabelColor)

	for hIdx := 0; hIdx < hours.total; hIdx++ {
		y := float64(headerHeight) + float64(hIdx)*cellHeight
		label := time.Date(0, 1, 1, hours.start+hIdx, 0, 0, 0, time.UTC).Format("15:04")
		dc.DrawStringAnchored(label, float64(leftLabelsWidth)-10, y, 1, 0.5)
	}
}

// drawDays малює всі дні тижня із заняттями
func (r *Renderer) drawDays(dc *gg.Context, week weekBounds, today time.Time, highlightToday bool,
	lessonsByDay map[string][]*model.Lesson, hours hourRange, dayWidth, dayHeight int, cellHeight float64) {

	date := week.start

	for dayIndex := 0; dayIndex < totalDaysInWeek; dayIndex++ {
		x := float64(leftLabelsWidth + dayIndex*dayWidth)
		y := float64(headerHeight)

		isToday := highlightToday && date.Equal(today)

		r.drawDayBackground(dc, x, y, dayWidth, dayHeight, dayIndex, isToday)
		r.drawDayHeader(dc, date, x, y, dayWidth)
		r.drawHourLines(dc, x, y, dayWidth, hours, cellHeight)

		for _, lesson := range lessonsByDay[date.Format("2006-01-02")] {
			r.drawLesson(dc, lesson, x, y, dayWidth, hours, cellHeight)
		}

		date = date.AddDate(0, 0, 1)
	}
}

// drawDayBackground малює фон дня
func (r *Renderer) drawDayBackground(dc *gg.Context, x, y float64, dayWidth, dayHeight, dayIndex int, isToday bool) {
	if isToday {
		dc.SetColor(todayBgColor)
	} else if dayIndex%2 == 0 {
		dc.SetColor(evenDayColor)
	} else {
		dc.SetColor(oddDayColor)
	}
	dc.DrawRectangle(x, y, float64(dayWidth), float64(dayHeight))
	dc.Fill()
}

// drawDayHeader малює назву дня тижня і дату
func (r *Renderer) drawDayHeader(dc *gg.Context, date time.Time, x, y float64, dayWidth int) {
	weekdayStr := format.WeekdayShortName(format.ISOWeekday(date))
	dateStr := date.Format("02.01")

	r.loadFont(dc, dayFontSize)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(dateStr, x+float64(dayWidth)/2, y, 0.5, -1)
	dc.DrawStringAnchored(weekdayStr, x+float64(dayWidth)/2, y, 0.5, -0.2)
}

// drawHourLines малює горизонтальні лінії годин
func (r *Renderer) drawHourLines(dc *gg.Context, x, y float64, dayWidth int, hours hourRange, cellHeight float64) {
	dc.SetLineWidth(0.3)
	dc.SetColor(hourLineColor)

	for hIdx := 0; hIdx <= hours.total; hIdx++ {
		hy := y + float64(hIdx)*cellHeight
		dc.DrawLine(x, hy, x+float64(dayWidth), hy)
		dc.Stroke()
	}
}

// drawLesson малює одне заняття
func (r *Renderer) drawLesson(dc *gg.Context, lesson *model.Lesson, x, y float64, dayWidth int, hours hourRange, cellHeight float64) {
	startHour := float64(lesson.StartDatetime.Hour()) + float64(lesson.StartDatetime.Minute())/60.0
	endHour := float64(lesson.EndDatetime.Hour()) + float64(lesson.EndDatetime.Minute())/60.0

	lessonY := y + (startHour-float64(hours.start))*cellHeight
	lessonHeight := (endHour - startHour) * cellHeight
	if lessonHeight < minLessonHeight {
		lessonHeight = minLessonHeight
	}

	fillColor := lessonColor(lesson.Status)
	lessonWidth := float64(dayWidth) - float64(dayPaddingX*2)

	// Тінь
	dc.SetColor(lessonShadowColor)
	dc.DrawRoundedRectangle(x+dayPaddingX+shadowOffset, lessonY+2+shadowOffset, lessonWidth, lessonHeight-4, lessonBorderRadius)
	dc.Fill()

	// Блок заняття
	dc.SetColor(fillColor)
	dc.DrawRoundedRectangle(x+float64(dayPaddingX), lessonY+2, lessonWidth, lessonHeight-4, lessonBorderRadius)
	dc.Fill()

	// Рамка
	dc.SetColor(darkenColor(fillColor, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x+float64(dayPaddingX), lessonY+2, lessonWidth, lessonHeight-4, lessonBorderRadius)
	dc.Stroke()

	// Час заняття
	r.loadFont(dc, lessonFontSize)
	dc.SetColor(lessonTextColor)
	txtX := x + float64(dayPaddingX) + 8
	txtY := lessonY + 8 + 10
	dc.DrawStringAnchored(format.FormatTimeRange(lesson.StartDatetime, lesson.EndDatetime), txtX, txtY, 0, 0)

	// Назва групи або тема, якщо вміщується
	label := lesson.GroupName
	if lesson.Topic != nil && *lesson.Topic != "" {
		label = *lesson.Topic
	}

	if label != "" && lessonHeight > 25 {
		maxLen := 20
		if len([]rune(label)) > maxLen {
			label = string([]rune(label)[:maxLen-3]) + "..."
		}
		r.loadFont(dc, lessonFontSize-2)
		dc.SetColor(lessonTextColor)
		dc.DrawStringAnchored(label, txtX, txtY+16, 0, 0)
	}
}

// lessonColor повертає колір блоку за статусом заняття
func lessonColor(status model.LessonStatus) color.RGBA {
	switch status {
	case model.LessonStatusScheduled:
		return lessonScheduledColor
	case model.LessonStatusDone:
		return lessonDoneColor
	case model.LessonStatusCanceled:
		return lessonCanceledColor
	default:
		return lessonScheduledColor
	}
}

// darkenColor затемнює колір на вказаний множник
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// drawCurrentTimeLine малює червону лінію поточного часу
func (r *Renderer) drawCurrentTimeLine(dc *gg.Context, highlight bool, hours hourRange, cellHeight float64, dayWidth int) {
	if !highlight {
		return
	}

	now := time.Now()
	currentHour := float64(now.Hour()) + float64(now.Minute())/60.0

	if currentHour < float64(hours.start) || currentHour > float64(hours.end) {
		return
	}

	y := float64(headerHeight) + (currentHour-float64(hours.start))*cellHeight
	dc.SetColor(currentTimeColor)
	dc.SetLineWidth(2.0)
	dc.DrawLine(float64(leftLabelsWidth), y, float64(leftLabelsWidth+totalDaysInWeek*dayWidth), y)
	dc.Stroke()
}

// drawLegend малює легенду праворуч
func (r *Renderer) drawLegend(dc *gg.Context, dayWidth int) {
	legendX := float64(leftLabelsWidth + totalDaysInWeek*dayWidth + 10)
	legendY := float64(imageHeight) - 100.0

	items := []struct {
		Label string
		Clr   color.RGBA
	}{
		{"Заплановано", lessonScheduledColor},
		{"Проведено", lessonDoneColor},
		{"Скасовано", lessonCanceledColor},
	}

	boxW := 16.0
	boxH := 12.0

	r.loadFont(dc, legendItemFontSize)
	for i, item := range items {
		itemY := legendY + float64(i)*22.0

		dc.SetColor(item.Clr)
		dc.DrawRoundedRectangle(legendX, itemY, boxW, boxH, 3)
		dc.Fill()

		dc.SetColor(legendItemColor)
		dc.DrawStringAnchored(item.Label, legendX+boxW+8, itemY+boxH/2, 0, 0.35)
	}
}

// dateOnly обрізає час, лишаючи тільки дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
