package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"eventstaffing/internal/domain"
)

func eventRows(ids ...string) *sqlmock.Rows {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "title", "description", "start_at", "end_at", "location", "cost",
		"required_volunteers", "managed_by_manager", "status", "category", "tags",
		"created_by_id", "created_at", "updated_at",
	})
	for _, id := range ids {
		rows.AddRow(id, "City Marathon", "annual run", now, now.Add(5*time.Hour),
			"Central Park", 1000.0, 20, true, domain.EventStatusCreated,
			"sports", "outdoor,charity", "org-1", now, now)
	}
	return rows
}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO events`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("event-uuid-1"))

	repo := NewEventRepository(db)
	event := &domain.Event{Title: "City Marathon", CreatedByID: "org-1"}
	require.NoError(t, repo.Create(ctx, event))
	require.Equal(t, "event-uuid-1", event.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM events`).
			WithArgs("event-1").
			WillReturnRows(eventRows("event-1"))

		repo := NewEventRepository(db)
		event, err := repo.GetByID(ctx, "event-1")
		require.NoError(t, err)
		require.Equal(t, "City Marathon", event.Title)
		require.Equal(t, 20, event.RequiredVolunteers)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM events`).
			WithArgs("event-missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewEventRepository(db)
		_, err = repo.GetByID(ctx, "event-missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_GetByIDAndCreator(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM events`).
		WithArgs("event-1", "org-2").
		WillReturnError(sql.ErrNoRows)

	repo := NewEventRepository(db)
	_, err = repo.GetByIDAndCreator(ctx, "event-1", "org-2")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListByCreatorID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns events", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM events`).
			WithArgs("org-1").
			WillReturnRows(eventRows("event-1", "event-2"))

		repo := NewEventRepository(db)
		events, err := repo.ListByCreatorID(ctx, "org-1")
		require.NoError(t, err)
		require.Len(t, events, 2)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no events yields empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM events`).
			WithArgs("org-2").
			WillReturnRows(eventRows())

		repo := NewEventRepository(db)
		events, err := repo.ListByCreatorID(ctx, "org-2")
		require.NoError(t, err)
		require.NotNil(t, events)
		require.Len(t, events, 0)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()
	event := &domain.Event{ID: "event-1", Title: "Renamed", Status: domain.EventStatusUpdated}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE events`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewEventRepository(db)
		require.NoError(t, repo.Update(ctx, event))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows affected", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE events`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewEventRepository(db)
		require.ErrorIs(t, repo.Update(ctx, event), domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
