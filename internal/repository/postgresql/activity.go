package postgresql

import (
	"context"
	"fmt"

	"github.com/emptrack/tracker-backend-go/internal/domain/activity"
	"github.com/emptrack/tracker-backend-go/internal/pkg/database"
)

type activityRepositoryImpl struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) activity.ActivityRepository {
	return &activityRepositoryImpl{db: db}
}

// Create implements activity.ActivityRepository.
func (r *activityRepositoryImpl) Create(ctx context.Context, entry activity.Activity) (activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO activities (employee_id, type, message)
		VALUES ($1, $2, $3)
		RETURNING id, date
	`

	err := q.QueryRow(ctx, query, entry.EmployeeID, entry.Type, entry.Message).Scan(&entry.ID, &entry.Date)
	if err != nil {
		return activity.Activity{}, fmt.Errorf("failed to create activity: %w", err)
	}
	return entry, nil
}

// ListRecent implements activity.ActivityRepository.
func (r *activityRepositoryImpl) ListRecent(ctx context.Context, employeeID string, limit int) ([]activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, message, date
		FROM activities
		WHERE employee_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var entries []activity.Activity
	for rows.Next() {
		var a activity.Activity
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Type, &a.Message, &a.Date); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		entries = append(entries, a)
	}
	return entries, rows.Err()
}
