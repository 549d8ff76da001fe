package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"osvita-admin/internal/format"
	"osvita-admin/internal/model"
	"osvita-admin/internal/repository/base"
)

const (
	// MinWeeksAhead мінімальний горизонт генерації
	MinWeeksAhead = 1
	// MaxWeeksAhead максимальний горизонт генерації
	MaxWeeksAhead = 52
	// DefaultWeeksAhead горизонт генерації за замовчуванням
	DefaultWeeksAhead = 8

	// Максимальна ширина періоду для сітки розкладу, в днях
	maxGridDays = 92
)

// GroupStore описує доступ до груп, потрібний сервісу розкладу
type GroupStore interface {
	GetActive(ctx context.Context) ([]*model.Group, error)
	List(ctx context.Context) ([]*model.Group, error)
}

// LessonStore описує доступ до занять, потрібний сервісу розкладу
type LessonStore interface {
	Create(ctx context.Context, lesson *model.Lesson) error
	Exists(ctx context.Context, groupID int64, date time.Time) (bool, error)
	GetRange(ctx context.Context, from, to time.Time, filter model.LessonFilter) ([]*model.Lesson, error)
}

// ScheduleService генерує заняття за тижневими шаблонами груп
// і віддає поденну сітку вже згенерованого розкладу
type ScheduleService struct {
	groups   GroupStore
	lessons  LessonStore
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time

	// Запуски генерації серіалізовані: паралельні запити не повинні
	// наввипередки вставляти заняття на ті самі дати
	mu sync.Mutex
}

func NewScheduleService(groups GroupStore, lessons LessonStore, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		groups:   groups,
		lessons:  lessons,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// slotTemplate — розібрані поля тижневого шаблону групи
type slotTemplate struct {
	weekday  int // 1 = понеділок, 7 = неділя
	hour     int
	minute   int
	duration time.Duration
}

// GenerateAll генерує заняття для всіх активних груп на weeksAhead тижнів
// уперед. Генерація ідемпотентна: дата, на яку заняття вже існує
// (незалежно від його статусу), пропускається. Помилка по одній групі
// не зриває весь прохід — вона фіксується у підсумку по цій групі
func (s *ScheduleService) GenerateAll(ctx context.Context, weeksAhead int) (*model.GenerationReport, error) {
	if weeksAhead < MinWeeksAhead || weeksAhead > MaxWeeksAhead {
		return nil, ErrWeeksAheadRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	groups, err := s.groups.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load active groups: %w", err)
	}

	today := dateOnly(s.now())
	horizon := today.AddDate(0, 0, weeksAhead*7)

	report := &model.GenerationReport{
		RunID:      uuid.New(),
		WeeksAhead: weeksAhead,
	}

	for _, group := range groups {
		result := s.generateForGroup(ctx, group, today, horizon)
		report.Groups = append(report.Groups, result)
		report.TotalGenerated += result.Generated
		report.TotalSkipped += result.Skipped
		report.TotalFailed += result.Failed
	}

	report.Summary = fmt.Sprintf("Згенеровано %d %s, пропущено %d",
		report.TotalGenerated, format.PluralizeLessons(report.TotalGenerated), report.TotalSkipped)

	s.logger.Info("Schedule generation finished",
		zap.String("run_id", report.RunID.String()),
		zap.Int("weeks_ahead", weeksAhead),
		zap.Int("total_groups", len(groups)),
		zap.Int("total_generated", report.TotalGenerated),
		zap.Int("total_skipped", report.TotalSkipped),
		zap.Int("total_failed", report.TotalFailed),
	)

	return report, nil
}

// generateForGroup генерує заняття однієї групи у вікні [windowStart, horizon)
func (s *ScheduleService) generateForGroup(ctx context.Context, group *model.Group, today, horizon time.Time) model.GroupGenerationResult {
	result := model.GroupGenerationResult{
		GroupID:   group.ID,
		GroupName: group.Name,
	}

	tmpl, err := s.slotTemplateFor(group)
	if err != nil {
		s.logger.Warn("Group has malformed schedule template, skipping",
			zap.Int64("group_id", group.ID),
			zap.String("group_name", group.Name),
			zap.Error(err))
		result.Error = err.Error()
		return result
	}

	// Група з майбутньою датою старту починає генеруватись тільки з неї —
	// заднім числом заняття не створюються
	windowStart := today
	if group.StartDate != nil {
		if start := dateOnly(*group.StartDate); start.After(windowStart) {
			windowStart = start
		}
	}

	for date := firstOccurrence(windowStart, tmpl.weekday); date.Before(horizon); date = date.AddDate(0, 0, 7) {
		exists, err := s.lessons.Exists(ctx, group.ID, date)
		if err != nil {
			s.logger.Warn("Failed to check lesson existence",
				zap.Int64("group_id", group.ID),
				zap.Time("lesson_date", date),
				zap.Error(err))
			result.Failed++
			result.Error = err.Error()
			continue
		}

		if exists {
			result.Skipped++
			continue
		}

		startDatetime := time.Date(date.Year(), date.Month(), date.Day(),
			tmpl.hour, tmpl.minute, 0, 0, date.Location())

		lesson := &model.Lesson{
			GroupID:       group.ID,
			LessonDate:    date,
			StartDatetime: startDatetime,
			EndDatetime:   startDatetime.Add(tmpl.duration),
			Status:        model.LessonStatusScheduled,
		}

		err = s.lessons.Create(ctx, lesson)
		if err != nil {
			// Паралельний запуск міг зайняти слот між перевіркою і вставкою —
			// унікальний індекс це зловив, рахуємо як пропуск
			if base.IsUniqueViolation(err) {
				result.Skipped++
				continue
			}
			s.logger.Warn("Failed to create lesson",
				zap.Int64("group_id", group.ID),
				zap.Time("lesson_date", date),
				zap.Error(err))
			result.Failed++
			result.Error = err.Error()
			continue
		}

		result.Generated++
	}

	return result
}

// slotTemplateFor розбирає поля шаблону групи і перевіряє їхню коректність
func (s *ScheduleService) slotTemplateFor(group *model.Group) (slotTemplate, error) {
	if err := s.validate.Struct(group); err != nil {
		return slotTemplate{}, fmt.Errorf("invalid group fields: %w", err)
	}

	if group.WeeklyDay == nil {
		return slotTemplate{}, errors.New("weekly_day is not set")
	}

	if group.StartTime == nil {
		return slotTemplate{}, errors.New("start_time is not set")
	}

	parsed, err := time.Parse("15:04", *group.StartTime)
	if err != nil {
		return slotTemplate{}, fmt.Errorf("parse start_time %q: %w", *group.StartTime, err)
	}

	if group.DurationMinutes <= 0 {
		return slotTemplate{}, errors.New("duration_minutes must be positive")
	}

	return slotTemplate{
		weekday:  *group.WeeklyDay,
		hour:     parsed.Hour(),
		minute:   parsed.Minute(),
		duration: time.Duration(group.DurationMinutes) * time.Minute,
	}, nil
}

// ScheduleGrid повертає поденну сітку занять за період [from, to] включно.
// Дні без занять теж присутні, щоб клієнт малював сітку без дірок
func (s *ScheduleService) ScheduleGrid(ctx context.Context, from, to time.Time, filter model.LessonFilter) (*model.ScheduleGrid, error) {
	from = dateOnly(from)
	to = dateOnly(to)

	if to.Before(from) {
		return nil, ErrDateRange
	}
	if int(to.Sub(from).Hours()/24) >= maxGridDays {
		return nil, ErrDateRange
	}

	lessons, err := s.lessons.GetRange(ctx, from, to.AddDate(0, 0, 1), filter)
	if err != nil {
		return nil, fmt.Errorf("load lessons: %w", err)
	}

	byDate := make(map[string][]*model.Lesson)
	for _, lesson := range lessons {
		key := lesson.LessonDate.Format("2006-01-02")
		byDate[key] = append(byDate[key], lesson)
	}

	grid := &model.ScheduleGrid{
		StartDate: from.Format("2006-01-02"),
		EndDate:   to.Format("2006-01-02"),
	}

	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		key := date.Format("2006-01-02")
		day := model.ScheduleDay{
			Date:    key,
			Weekday: format.WeekdayName(format.ISOWeekday(date)),
			Lessons: byDate[key],
		}
		if day.Lessons == nil {
			day.Lessons = []*model.Lesson{}
		}
		grid.Days = append(grid.Days, day)
	}

	return grid, nil
}

// LessonsForWeek повертає заняття тижня, в який потрапляє date,
// разом із межами тижня (понеділок-неділя)
func (s *ScheduleService) LessonsForWeek(ctx context.Context, date time.Time, filter model.LessonFilter) (time.Time, time.Time, []*model.Lesson, error) {
	start, end := WeekBounds(date)

	lessons, err := s.lessons.GetRange(ctx, start, end.AddDate(0, 0, 1), filter)
	if err != nil {
		return start, end, nil, fmt.Errorf("load week lessons: %w", err)
	}

	return start, end, lessons, nil
}

// Groups повертає всі групи для фільтрів розкладу
func (s *ScheduleService) Groups(ctx context.Context) ([]*model.Group, error) {
	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// WeekBounds нормалізує дату до меж тижня (Пн-Нд)
func WeekBounds(date time.Time) (time.Time, time.Time) {
	day := dateOnly(date)
	start := day.AddDate(0, 0, -(format.ISOWeekday(day) - 1))
	return start, start.AddDate(0, 0, 6)
}

// dateOnly обрізає час, лишаючи тільки дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// firstOccurrence повертає першу дату з днем тижня weekday, не ранішу за from
func firstOccurrence(from time.Time, weekday int) time.Time {
	diff := (weekday - format.ISOWeekday(from) + 7) % 7
	return from.AddDate(0, 0, diff)
}
