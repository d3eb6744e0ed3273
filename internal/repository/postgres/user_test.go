package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/filesmanager-server/internal/model"
)

var userCols = []string{"id", "email", "password_hash", "created_at"}

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return &Connection{DB: db}, mock
}

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery(regexp.QuoteMeta(queryUserByEmail)).
			WithArgs("a@b.com").
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(id.String(), "a@b.com", []byte("hash"), now))

		user, err := NewUserRepository(conn).GetByEmail(ctx, "a@b.com")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "a@b.com", user.Email)
		assert.Equal(t, []byte("hash"), user.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery(regexp.QuoteMeta(queryUserByEmail)).
			WithArgs("nobody@b.com").
			WillReturnRows(sqlmock.NewRows(userCols))

		_, err := NewUserRepository(conn).GetByEmail(ctx, "nobody@b.com")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("db error is wrapped", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery(regexp.QuoteMeta(queryUserByEmail)).
			WithArgs("a@b.com").
			WillReturnError(errors.New("db down"))

		_, err := NewUserRepository(conn).GetByEmail(ctx, "a@b.com")
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrNotFound)
		assert.Contains(t, err.Error(), "failed to get user by email")
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	conn, mock := newMockConnection(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(queryUserByID)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(userCols))

	_, err := NewUserRepository(conn).GetByID(context.Background(), id)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	user := model.User{
		ID:           uuid.New(),
		Email:        "a@b.com",
		PasswordHash: []byte("hash"),
		CreatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("success", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery(regexp.QuoteMeta(queryUserInsert)).
			WithArgs(user.ID, user.Email, user.PasswordHash, user.CreatedAt).
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(user.ID.String(), user.Email, user.PasswordHash, user.CreatedAt))

		saved, err := NewUserRepository(conn).Create(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, user, saved)
	})

	t.Run("duplicate email", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery(regexp.QuoteMeta(queryUserInsert)).
			WithArgs(user.ID, user.Email, user.PasswordHash, user.CreatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := NewUserRepository(conn).Create(ctx, user)
		assert.ErrorIs(t, err, model.ErrAlreadyExists)
	})
}

func TestUserRepository_Count(t *testing.T) {
	conn, mock := newMockConnection(t)
	mock.ExpectQuery(regexp.QuoteMeta(queryUserCount)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	n, err := NewUserRepository(conn).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}
