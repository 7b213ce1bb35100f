package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"eventstaffing/internal/domain"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("stu@example.com", "Stu Dent", domain.UserTypeStudent, false, "hash", "salt", now, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-uuid-1"))
			},
		},
		{
			name: "unique violation returns ErrDuplicateEmail",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			errIs:   domain.ErrDuplicateEmail,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			user := domain.NewUser("stu@example.com", "Stu Dent", domain.UserTypeStudent, "hash", "salt", now, now)
			err = repo.Create(ctx, user)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, "user-uuid-1", user.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{
			"id", "email", "name", "user_type", "profile_completed",
			"password_hash", "password_salt", "created_at", "updated_at",
		}).AddRow("user-1", "stu@example.com", "Stu Dent", domain.UserTypeStudent, true, "hash", "salt", now, now)
		mock.ExpectQuery(`SELECT (.+) FROM users`).
			WithArgs("stu@example.com").
			WillReturnRows(rows)

		repo := NewUserRepository(db)
		user, err := repo.GetByEmail(ctx, "stu@example.com")
		require.NoError(t, err)
		require.Equal(t, "user-1", user.ID)
		require.True(t, user.ProfileCompleted)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM users`).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		repo := NewUserRepository(db)
		_, err = repo.GetByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_SetProfileCompleted(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE users SET profile_completed`).
			WithArgs(true, "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewUserRepository(db)
		require.NoError(t, repo.SetProfileCompleted(ctx, "user-1", true))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE users SET profile_completed`).
			WithArgs(true, "nobody").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewUserRepository(db)
		require.ErrorIs(t, repo.SetProfileCompleted(ctx, "nobody", true), domain.ErrUserNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
