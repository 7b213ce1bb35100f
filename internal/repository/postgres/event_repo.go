package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventstaffing/internal/domain"
)

const eventColumns = `id, title, description, start_at, end_at, location, cost, required_volunteers, managed_by_manager, status, category, tags, created_by_id, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, start_at, end_at, location, cost, required_volunteers, managed_by_manager, status, category, tags, created_by_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.StartAt, e.EndAt, e.Location, e.Cost,
		e.RequiredVolunteers, e.ManagedByManager, e.Status, e.Category, e.Tags,
		e.CreatedByID, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	err := scanEvent(r.DB.QueryRowContext(ctx, query, id), e)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetByIDAndCreator(ctx context.Context, id, creatorID string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1 AND created_by_id = $2
	`
	e := &domain.Event{}
	err := scanEvent(r.DB.QueryRowContext(ctx, query, id, creatorID), e)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListByCreatorID(ctx context.Context, creatorID string) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE created_by_id = $1
		ORDER BY start_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, start_at = $3, end_at = $4, location = $5,
		    cost = $6, required_volunteers = $7, managed_by_manager = $8, status = $9,
		    category = $10, tags = $11, updated_at = $12
		WHERE id = $13
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.Title, e.Description, e.StartAt, e.EndAt, e.Location, e.Cost,
		e.RequiredVolunteers, e.ManagedByManager, e.Status, e.Category, e.Tags,
		e.UpdatedAt, e.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner, e *domain.Event) error {
	return row.Scan(
		&e.ID, &e.Title, &e.Description, &e.StartAt, &e.EndAt, &e.Location,
		&e.Cost, &e.RequiredVolunteers, &e.ManagedByManager, &e.Status,
		&e.Category, &e.Tags, &e.CreatedByID, &e.CreatedAt, &e.UpdatedAt,
	)
}

func collectEvents(rows *sql.Rows) ([]*domain.Event, error) {
	var events []*domain.Event
	for rows.Next() {
		e := &domain.Event{}
		if err := scanEvent(rows, e); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}
