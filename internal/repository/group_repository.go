package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"osvita-admin/internal/model"
)

type GroupRepository struct {
	pool *pgxpool.Pool
}

func NewGroupRepository(pool *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{pool: pool}
}

const groupColumns = `
	id, name, course_id, teacher_id, weekly_day, start_time,
	duration_minutes, status, start_date, monthly_price, created_at, updated_at
`

// GetActive повертає всі активні групи, для яких генерується розклад
func (r *GroupRepository) GetActive(ctx context.Context) ([]*model.Group, error) {
	query := `
		SELECT ` + groupColumns + `
		FROM groups
		WHERE status = 'active'
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get active groups: %w", err)
	}
	defer rows.Close()

	return scanGroups(rows)
}

// List повертає всі групи (для фільтрів розкладу)
func (r *GroupRepository) List(ctx context.Context) ([]*model.Group, error) {
	query := `
		SELECT ` + groupColumns + `
		FROM groups
		ORDER BY status, name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	return scanGroups(rows)
}

// GetByID повертає групу за ID
func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*model.Group, error) {
	query := `
		SELECT ` + groupColumns + `
		FROM groups
		WHERE id = $1
	`

	group, err := scanGroup(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get group by id: %w", err)
	}

	return group, nil
}

func scanGroup(row pgx.Row) (*model.Group, error) {
	var g model.Group
	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.CourseID,
		&g.TeacherID,
		&g.WeeklyDay,
		&g.StartTime,
		&g.DurationMinutes,
		&g.Status,
		&g.StartDate,
		&g.MonthlyPrice,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func scanGroups(rows pgx.Rows) ([]*model.Group, error) {
	var groups []*model.Group
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}
