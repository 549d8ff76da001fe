package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"osvita-admin/internal/model"
)

type LessonRepository struct {
	pool *pgxpool.Pool
}

func NewLessonRepository(pool *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{pool: pool}
}

// Create створює нове заняття.
// При порушенні унікальності (group_id, lesson_date) повертає помилку,
// яку можна розпізнати через base.IsUniqueViolation
func (r *LessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	query := `
		INSERT INTO lessons (group_id, lesson_date, start_datetime, end_datetime, status, topic)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		lesson.GroupID,
		lesson.LessonDate,
		lesson.StartDatetime,
		lesson.EndDatetime,
		lesson.Status,
		lesson.Topic,
	).Scan(&lesson.ID, &lesson.CreatedAt)

	if err != nil {
		return fmt.Errorf("create lesson: %w", err)
	}

	return nil
}

// Exists перевіряє чи існує заняття групи на вказану дату
func (r *LessonRepository) Exists(ctx context.Context, groupID int64, date time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM lessons
			WHERE group_id = $1 AND lesson_date = $2
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, groupID, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check lesson exists: %w", err)
	}

	return exists, nil
}

// GetRange повертає заняття за період [from, to) з назвою групи та викладачем
func (r *LessonRepository) GetRange(ctx context.Context, from, to time.Time, filter model.LessonFilter) ([]*model.Lesson, error) {
	query := `
		SELECT l.id, l.group_id, l.lesson_date, l.start_datetime, l.end_datetime,
		       l.status, l.topic, l.created_at, g.name, g.teacher_id
		FROM lessons l
		JOIN groups g ON g.id = l.group_id
		WHERE l.lesson_date >= $1
		  AND l.lesson_date < $2
	`

	args := []interface{}{from, to}

	if filter.GroupID != nil {
		args = append(args, *filter.GroupID)
		query += fmt.Sprintf(" AND l.group_id = $%d", len(args))
	}

	if filter.TeacherID != nil {
		args = append(args, *filter.TeacherID)
		query += fmt.Sprintf(" AND g.teacher_id = $%d", len(args))
	}

	query += " ORDER BY l.start_datetime"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get lessons range: %w", err)
	}
	defer rows.Close()

	var lessons []*model.Lesson
	for rows.Next() {
		var lesson model.Lesson
		err := rows.Scan(
			&lesson.ID,
			&lesson.GroupID,
			&lesson.LessonDate,
			&lesson.StartDatetime,
			&lesson.EndDatetime,
			&lesson.Status,
			&lesson.Topic,
			&lesson.CreatedAt,
			&lesson.GroupName,
			&lesson.TeacherID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		lessons = append(lessons, &lesson)
	}

	return lessons, rows.Err()
}
