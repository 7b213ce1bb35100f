package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventstaffing/internal/domain"
)

type eventRoleRepository struct {
	DB *sql.DB
}

func NewEventRoleRepository(db *sql.DB) domain.EventRoleRepository {
	return &eventRoleRepository{
		DB: db,
	}
}

func (r *eventRoleRepository) Create(ctx context.Context, role *domain.EventRole) error {
	query := `
		INSERT INTO event_roles (event_id, title, description, budget, currency, responsibilities, requirements, deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		role.EventID, role.Title, role.Description, role.Budget, role.Currency,
		role.Responsibilities, role.Requirements, role.Deadline,
	).Scan(&role.ID)
}

func (r *eventRoleRepository) GetByID(ctx context.Context, id string) (*domain.EventRole, error) {
	query := `
		SELECT id, event_id, title, description, budget, currency, responsibilities, requirements, deadline
		FROM event_roles
		WHERE id = $1
	`
	role := &domain.EventRole{}
	var deadline sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&role.ID, &role.EventID, &role.Title, &role.Description, &role.Budget,
		&role.Currency, &role.Responsibilities, &role.Requirements, &deadline,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if deadline.Valid {
		role.Deadline = &deadline.Time
	}
	return role, nil
}

func (r *eventRoleRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.EventRole, error) {
	query := `
		SELECT id, event_id, title, description, budget, currency, responsibilities, requirements, deadline
		FROM event_roles
		WHERE event_id = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*domain.EventRole
	for rows.Next() {
		role := &domain.EventRole{}
		var deadline sql.NullTime
		if err := rows.Scan(
			&role.ID, &role.EventID, &role.Title, &role.Description, &role.Budget,
			&role.Currency, &role.Responsibilities, &role.Requirements, &deadline,
		); err != nil {
			return nil, err
		}
		if deadline.Valid {
			role.Deadline = &deadline.Time
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if roles == nil {
		roles = []*domain.EventRole{}
	}
	return roles, nil
}
