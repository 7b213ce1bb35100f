package postgres

import (
	"context"
	"database/sql"

	"eventstaffing/internal/domain"
)

type dashboardRepository struct {
	DB *sql.DB
}

func NewDashboardRepository(db *sql.DB) domain.DashboardRepository {
	return &dashboardRepository{
		DB: db,
	}
}

func (r *dashboardRepository) GetStudentCounts(ctx context.Context, userID string) (*domain.StudentCounts, error) {
	query := `
		SELECT
			COUNT(CASE WHEN r.status = 'APPROVED' AND e.end_at < NOW() THEN 1 END) AS past_event_count,
			COUNT(CASE WHEN r.status = 'APPROVED' AND e.start_at > NOW() THEN 1 END) AS upcoming_event_count,
			COALESCE(ROUND(SUM(CASE
				WHEN r.status = 'APPROVED' AND e.end_at < NOW()
				THEN EXTRACT(EPOCH FROM e.end_at - e.start_at)
			END) / 3600, 2), 0) AS total_hours
		FROM events e
		JOIN registrations r ON r.event_id = e.id
		WHERE r.user_id = $1
	`
	c := &domain.StudentCounts{}
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&c.PastEventCount, &c.UpcomingEventCount, &c.TotalHours)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *dashboardRepository) ListStudentActiveEvents(ctx context.Context, userID string) ([]*domain.Event, error) {
	query := `
		SELECT ` + prefixedEventColumns("e") + `
		FROM events e
		JOIN registrations r ON r.event_id = e.id
		WHERE r.user_id = $1 AND r.status = 'APPROVED' AND e.start_at > NOW()
		ORDER BY e.start_at
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *dashboardRepository) ListStudentOpenEvents(ctx context.Context, userID string) ([]*domain.Event, error) {
	query := `
		SELECT ` + prefixedEventColumns("e") + `
		FROM events e
		WHERE e.id NOT IN (SELECT r.event_id FROM registrations r WHERE r.user_id = $1)
		  AND e.start_at > NOW()
		ORDER BY e.start_at
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *dashboardRepository) GetManagerCounts(ctx context.Context, userID string) (*domain.ManagerCounts, error) {
	query := `
		SELECT
			COUNT(DISTINCT CASE WHEN e.end_at < NOW() THEN e.id END) AS past_event_count,
			COUNT(DISTINCT CASE WHEN e.start_at > NOW() THEN e.id END) AS upcoming_event_count,
			COUNT(CASE WHEN e.start_at > NOW() AND r.status = 'APPROVED' THEN 1 END) AS approved_upcoming_event_count
		FROM events e
		JOIN invitations i ON i.event_id = e.id
		LEFT JOIN registrations r ON r.event_id = e.id
		WHERE i.manager_id = $1 AND i.selected = true
	`
	c := &domain.ManagerCounts{}
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&c.PastEventCount, &c.UpcomingEventCount, &c.ApprovedUpcomingCount)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *dashboardRepository) ListManagerAssignedEvents(ctx context.Context, userID string) ([]*domain.Event, error) {
	query := `
		SELECT ` + prefixedEventColumns("e") + `
		FROM events e
		JOIN invitations i ON i.event_id = e.id
		WHERE i.selected = true AND i.manager_id = $1 AND e.start_at > NOW()
		ORDER BY e.start_at
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *dashboardRepository) GetOrganizerCounts(ctx context.Context, userID string) (*domain.OrganizerCounts, error) {
	query := `
		SELECT
			COUNT(*) AS total_event_count,
			COUNT(CASE WHEN e.start_at > NOW() THEN 1 END) AS upcoming_event_count,
			COUNT(CASE WHEN e.end_at < NOW() THEN 1 END) AS past_event_count,
			COALESCE(SUM(CASE WHEN e.end_at < NOW() THEN e.cost * e.required_volunteers END), 0) AS total_past_event_cost
		FROM events e
		WHERE e.created_by_id = $1
	`
	c := &domain.OrganizerCounts{}
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&c.TotalEventCount, &c.UpcomingEventCount, &c.PastEventCount, &c.TotalPastEventCost)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *dashboardRepository) ListOrganizerEventDetails(ctx context.Context, userID string) ([]*domain.OrganizerEventDetail, error) {
	query := `
		SELECT ` + prefixedEventColumns("e") + `,
		       COUNT(CASE WHEN r.status = 'APPROVED' THEN r.id END) AS registered_students,
		       e.cost * e.required_volunteers AS total_budget,
		       e.cost * COUNT(CASE WHEN r.status = 'APPROVED' THEN r.id END) AS used_budget
		FROM events e
		LEFT JOIN registrations r ON r.event_id = e.id
		WHERE e.created_by_id = $1
		GROUP BY e.id
		ORDER BY e.end_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]*domain.OrganizerEventDetail, 0)
	for rows.Next() {
		d := &domain.OrganizerEventDetail{Event: &domain.Event{}}
		e := d.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.StartAt, &e.EndAt, &e.Location,
			&e.Cost, &e.RequiredVolunteers, &e.ManagedByManager, &e.Status,
			&e.Category, &e.Tags, &e.CreatedByID, &e.CreatedAt, &e.UpdatedAt,
			&d.RegisteredStudents, &d.TotalBudget, &d.UsedBudget,
		); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func prefixedEventColumns(alias string) string {
	return alias + `.id, ` + alias + `.title, ` + alias + `.description, ` +
		alias + `.start_at, ` + alias + `.end_at, ` + alias + `.location, ` +
		alias + `.cost, ` + alias + `.required_volunteers, ` + alias + `.managed_by_manager, ` +
		alias + `.status, ` + alias + `.category, ` + alias + `.tags, ` +
		alias + `.created_by_id, ` + alias + `.created_at, ` + alias + `.updated_at`
}
