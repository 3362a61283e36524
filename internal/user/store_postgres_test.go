// Copyright (c) 2026 Commdominium. All rights reserved.

package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commdominium/commdominium/internal/platform/apperr"
	"github.com/commdominium/commdominium/internal/platform/dberr"
	"github.com/commdominium/commdominium/internal/user"
)

var userColumns = []string{
	"id", "fullname", "email", "password", "id_condominium", "id_usertype",
	"block", "building", "number", "avatararchive", "active", "createdat", "updatedat",
}

func newRepository(t *testing.T) (*user.PostgresRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return user.NewPostgresRepository(mock), mock
}

func sampleRow(id int, email string) []any {
	condominiumID := 5
	now := time.Now()
	return []any{
		id, "Maria Souza", email, "$2a$10$hash", &condominiumID, 3,
		"A", "Bloco 1", "101", "", true, now, now,
	}
}

/*
TestPostgresRepository_Create verifies the insert returns the generated id
and maps unique violations to a conflict.
*/
func TestPostgresRepository_Create(t *testing.T) {
	repository, mock := newRepository(t)
	ctx := context.Background()

	condominiumID := 5
	account := &user.User{
		Fullname:      "Maria Souza",
		Email:         "maria@example.com",
		PasswordHash:  "$2a$10$hash",
		IDCondominium: &condominiumID,
		IDUserType:    3,
		Active:        true,
	}

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(account.Fullname, account.Email, account.PasswordHash, account.IDCondominium,
			account.IDUserType, account.Block, account.Building, account.Number,
			account.AvatarArchive, account.Active, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(42))

	require.NoError(t, repository.Create(ctx, account))
	assert.Equal(t, 42, account.ID)

	// Duplicate email maps to a conflict.
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(account.Fullname, account.Email, account.PasswordHash, account.IDCondominium,
			account.IDUserType, account.Block, account.Building, account.Number,
			account.AvatarArchive, account.Active, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repository.Create(ctx, account)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresRepository_FindByEmail verifies the lookup used by the login
flow, including the not-found mapping.
*/
func TestPostgresRepository_FindByEmail(t *testing.T) {
	repository, mock := newRepository(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email = \$1`).
		WithArgs("maria@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(sampleRow(10, "maria@example.com")...))

	account, err := repository.FindByEmail(ctx, "maria@example.com")
	require.NoError(t, err)
	assert.Equal(t, 10, account.ID)
	assert.Equal(t, "maria@example.com", account.Email)
	require.NotNil(t, account.IDCondominium)
	assert.Equal(t, 5, *account.IDCondominium)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email = \$1`).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err = repository.FindByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, dberr.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresRepository_FindAllByCondominium verifies the scoped listing.
*/
func TestPostgresRepository_FindAllByCondominium(t *testing.T) {
	repository, mock := newRepository(t)

	mock.ExpectQuery(`SELECT .+ FROM users\s+WHERE id_condominium = \$1 ORDER BY fullname ASC`).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(sampleRow(10, "maria@example.com")...).
			AddRow(sampleRow(11, "jose@example.com")...))

	accounts, err := repository.FindAllByCondominium(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "jose@example.com", accounts[1].Email)

	require.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresRepository_SetActive verifies the soft toggle treats a missing
row as not found.
*/
func TestPostgresRepository_SetActive(t *testing.T) {
	repository, mock := newRepository(t)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE users SET active = \$1, updatedat = \$2 WHERE id = \$3`).
		WithArgs(false, pgxmock.AnyArg(), 10).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repository.SetActive(ctx, 10, false))

	mock.ExpectExec(`UPDATE users SET active = \$1, updatedat = \$2 WHERE id = \$3`).
		WithArgs(true, pgxmock.AnyArg(), 999).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repository.SetActive(ctx, 999, true)
	require.ErrorIs(t, err, dberr.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresRepository_Delete verifies the hard delete and missing-row
mapping.
*/
func TestPostgresRepository_Delete(t *testing.T) {
	repository, mock := newRepository(t)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(10).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repository.Delete(ctx, 10))

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(999).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.ErrorIs(t, repository.Delete(ctx, 999), dberr.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
