package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventstaffing/internal/domain"
)

const invitationColumns = `id, event_id, role_id, manager_id, proposed_budget, manager_message, sent_at, responded_at, status, selected`

type invitationRepository struct {
	DB *sql.DB
}

func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{
		DB: db,
	}
}

// Create inserts the invitation. The invitations table carries a unique
// constraint on (role_id, manager_id); a unique violation is reported as
// domain.ErrConflict so the caller can fetch and return the existing record.
func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `
		INSERT INTO invitations (event_id, role_id, manager_id, proposed_budget, manager_message, sent_at, status, selected)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		inv.EventID, inv.RoleID, inv.ManagerID, inv.ProposedBudget,
		inv.ManagerMessage, inv.SentAt, inv.Status, inv.Selected,
	).Scan(&inv.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *invitationRepository) GetByID(ctx context.Context, id string) (*domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

func (r *invitationRepository) GetByRoleAndManager(ctx context.Context, roleID, managerID string) (*domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE role_id = $1 AND manager_id = $2
	`
	return r.getOne(ctx, query, roleID, managerID)
}

func (r *invitationRepository) GetByIDAndManager(ctx context.Context, id, managerID string) (*domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE id = $1 AND manager_id = $2
	`
	return r.getOne(ctx, query, id, managerID)
}

func (r *invitationRepository) GetSelectedByEvent(ctx context.Context, eventID string) (*domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE event_id = $1 AND selected = true
	`
	return r.getOne(ctx, query, eventID)
}

func (r *invitationRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	err := scanInvitation(r.DB.QueryRowContext(ctx, query, args...), inv)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *invitationRepository) Update(ctx context.Context, inv *domain.Invitation) error {
	query := `
		UPDATE invitations
		SET proposed_budget = $1, manager_message = $2, responded_at = $3, status = $4, selected = $5
		WHERE id = $6
	`
	result, err := r.DB.ExecContext(ctx, query,
		inv.ProposedBudget, inv.ManagerMessage, inv.RespondedAt, inv.Status, inv.Selected, inv.ID,
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

func (r *invitationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE event_id = $1
		ORDER BY sent_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invs []*domain.Invitation
	for rows.Next() {
		inv := &domain.Invitation{}
		if err := scanInvitation(rows, inv); err != nil {
			return nil, err
		}
		invs = append(invs, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if invs == nil {
		invs = []*domain.Invitation{}
	}
	return invs, nil
}

func (r *invitationRepository) ListByManagerID(ctx context.Context, managerID string) ([]*domain.ManagerInvitationView, error) {
	query := `
		SELECT i.id, i.event_id, e.title, u.name, r.title, r.description, r.deadline,
		       r.responsibilities, r.requirements, i.proposed_budget, i.manager_message,
		       i.sent_at, i.status
		FROM invitations i
		JOIN events e ON e.id = i.event_id
		JOIN users u ON u.id = e.created_by_id
		JOIN event_roles r ON r.id = i.role_id
		WHERE i.manager_id = $1
		ORDER BY i.sent_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]*domain.ManagerInvitationView, 0)
	for rows.Next() {
		v := &domain.ManagerInvitationView{}
		var deadline sql.NullTime
		if err := rows.Scan(
			&v.ID, &v.EventID, &v.EventTitle, &v.OrganizerName, &v.RoleTitle,
			&v.RoleDescription, &deadline, &v.Responsibilities, &v.Requirements,
			&v.ProposedBudget, &v.ManagerMessage, &v.SentAt, &v.Status,
		); err != nil {
			return nil, err
		}
		if deadline.Valid {
			v.RoleDeadline = &deadline.Time
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

func (r *invitationRepository) ListManagerCandidates(ctx context.Context) ([]*domain.ManagerCandidate, error) {
	query := `
		SELECT u.id, u.name, u.email,
		       COALESCE(m.years_experience, 0),
		       COALESCE(m.specializations, ''),
		       COALESCE(m.availability, '')
		FROM users u
		LEFT JOIN manager_profiles m ON m.user_id = u.id
		WHERE u.user_type = $1
		ORDER BY u.name
	`
	rows, err := r.DB.QueryContext(ctx, query, domain.UserTypeManager)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]*domain.ManagerCandidate, 0)
	for rows.Next() {
		c := &domain.ManagerCandidate{}
		if err := rows.Scan(&c.UserID, &c.Name, &c.Email, &c.YearsExperience, &c.Specializations, &c.Availability); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func scanInvitation(row rowScanner, inv *domain.Invitation) error {
	var respondedAt sql.NullTime
	err := row.Scan(
		&inv.ID, &inv.EventID, &inv.RoleID, &inv.ManagerID, &inv.ProposedBudget,
		&inv.ManagerMessage, &inv.SentAt, &respondedAt, &inv.Status, &inv.Selected,
	)
	if err != nil {
		return err
	}
	if respondedAt.Valid {
		inv.RespondedAt = &respondedAt.Time
	}
	return nil
}
