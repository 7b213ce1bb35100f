package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventstaffing/internal/domain"
)

const registrationColumns = `id, event_id, user_id, previous_experience, reason, skills, notes, availability, has_bike, transport_medium, dietary_restrictions, status, created_at, updated_at`

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Create inserts the registration. The registrations table carries a unique
// constraint on (event_id, user_id); a unique violation is reported as
// domain.ErrConflict so the caller can fall back to an update.
func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (event_id, user_id, previous_experience, reason, skills, notes, availability, has_bike, transport_medium, dietary_restrictions, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		reg.EventID, reg.UserID, reg.PreviousExperience, reg.Reason, reg.Skills,
		reg.Notes, reg.Availability, reg.HasBike, reg.TransportMedium,
		reg.DietaryRestrictions, reg.Status, reg.CreatedAt, reg.UpdatedAt,
	).Scan(&reg.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *registrationRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE event_id = $1 AND user_id = $2
	`
	reg := &domain.Registration{}
	err := r.DB.QueryRowContext(ctx, query, eventID, userID).Scan(
		&reg.ID, &reg.EventID, &reg.UserID, &reg.PreviousExperience, &reg.Reason,
		&reg.Skills, &reg.Notes, &reg.Availability, &reg.HasBike,
		&reg.TransportMedium, &reg.DietaryRestrictions, &reg.Status,
		&reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) Update(ctx context.Context, reg *domain.Registration) error {
	query := `
		UPDATE registrations
		SET previous_experience = $1, reason = $2, skills = $3, notes = $4,
		    availability = $5, has_bike = $6, transport_medium = $7,
		    dietary_restrictions = $8, status = $9, updated_at = $10
		WHERE id = $11
	`
	result, err := r.DB.ExecContext(ctx, query,
		reg.PreviousExperience, reg.Reason, reg.Skills, reg.Notes,
		reg.Availability, reg.HasBike, reg.TransportMedium,
		reg.DietaryRestrictions, reg.Status, reg.UpdatedAt, reg.ID,
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

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.RegistrationWithStudent, error) {
	query := `
		SELECT r.id, u.name, u.email,
		       COALESCE(s.university, ''), COALESCE(s.degree, ''),
		       COALESCE(s.current_year, ''), COALESCE(s.marks, ''),
		       COALESCE(s.bio, ''),
		       r.skills, r.availability, r.status
		FROM registrations r
		JOIN users u ON u.id = r.user_id
		LEFT JOIN student_profiles s ON s.user_id = u.id
		WHERE r.event_id = $1
		ORDER BY r.created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]*domain.RegistrationWithStudent, 0)
	for rows.Next() {
		s := &domain.RegistrationWithStudent{}
		if err := rows.Scan(
			&s.ID, &s.StudentName, &s.StudentEmail, &s.University, &s.Degree,
			&s.CurrentYear, &s.Marks, &s.Bio, &s.Skills, &s.Availability, &s.Status,
		); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// BatchUpdateStatus runs every update inside one transaction. An update whose
// registration id matches no row of the event rolls the whole batch back with
// domain.ErrNotFound.
func (r *registrationRepository) BatchUpdateStatus(ctx context.Context, eventID string, updates []*domain.RegistrationStatusUpdate) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE registrations
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND event_id = $3
	`
	for _, upd := range updates {
		result, err := tx.ExecContext(ctx, query, upd.Status, upd.RegistrationID, eventID)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.ErrNotFound
		}
	}
	return tx.Commit()
}

func (r *registrationRepository) ListStaffingStatsByManager(ctx context.Context, managerID string) ([]*domain.EventStaffingStats, error) {
	query := `
		SELECT e.id, e.title, e.location, e.start_at, e.required_volunteers,
		       COUNT(r.id) AS total_count,
		       COUNT(CASE WHEN r.status = 'PENDING' THEN 1 END) AS pending_count,
		       COUNT(CASE WHEN r.status = 'APPROVED' THEN 1 END) AS approved_count,
		       COUNT(CASE WHEN r.status = 'REJECTED' THEN 1 END) AS rejected_count
		FROM events e
		JOIN invitations i ON i.event_id = e.id
		LEFT JOIN registrations r ON r.event_id = e.id
		WHERE i.selected = true AND i.manager_id = $1 AND e.start_at > NOW()
		GROUP BY e.id, e.title, e.location, e.start_at, e.required_volunteers
		ORDER BY e.start_at
	`
	rows, err := r.DB.QueryContext(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.EventStaffingStats, 0)
	for rows.Next() {
		s := &domain.EventStaffingStats{}
		if err := rows.Scan(
			&s.EventID, &s.Title, &s.Location, &s.StartAt, &s.RequiredVolunteers,
			&s.TotalCount, &s.PendingCount, &s.ApprovedCount, &s.RejectedCount,
		); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
