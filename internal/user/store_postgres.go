// Copyright (c) 2026 Commdominium. All rights reserved.

package user

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/commdominium/commdominium/internal/platform/dberr"
)

// DB is the subset of pgxpool.Pool the repository needs. Declared here so
// tests can substitute a pgxmock pool.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const userColumns = `id, fullname, email, password, id_condominium, id_usertype,
		block, building, number, avatararchive, active, createdat, updatedat`

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db DB
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Create(context context.Context, user *User) error {
	const query = `
		INSERT INTO users (
			fullname, email, password, id_condominium, id_usertype,
			block, building, number, avatararchive, active, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := repository.db.QueryRow(context, query,
		user.Fullname,
		user.Email,
		user.PasswordHash,
		user.IDCondominium,
		user.IDUserType,
		user.Block,
		user.Building,
		user.Number,
		user.AvatarArchive,
		user.Active,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)

	return dberr.Wrap(err, "user_create")
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return repository.scanOne(repository.db.QueryRow(context, query, id))
}

func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return repository.scanOne(repository.db.QueryRow(context, query, email))
}

func (repository *PostgresRepository) FindAll(context context.Context) ([]*User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY fullname ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "user_find_all")
	}
	defer rows.Close()

	return repository.scanMany(rows)
}

func (repository *PostgresRepository) FindAllByCondominium(context context.Context, condominiumID int) ([]*User, error) {
	const query = `SELECT ` + userColumns + ` FROM users
		WHERE id_condominium = $1 ORDER BY fullname ASC`

	rows, err := repository.db.Query(context, query, condominiumID)
	if err != nil {
		return nil, dberr.Wrap(err, "user_find_by_condominium")
	}
	defer rows.Close()

	return repository.scanMany(rows)
}

func (repository *PostgresRepository) Update(context context.Context, user *User) error {
	const query = `
		UPDATE users SET
			fullname = $1, email = $2, password = $3, id_condominium = $4,
			id_usertype = $5, block = $6, building = $7, number = $8,
			avatararchive = $9, updatedat = $10
		WHERE id = $11`

	user.UpdatedAt = time.Now()

	tag, err := repository.db.Exec(context, query,
		user.Fullname,
		user.Email,
		user.PasswordHash,
		user.IDCondominium,
		user.IDUserType,
		user.Block,
		user.Building,
		user.Number,
		user.AvatarArchive,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "user_update")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SetActive(context context.Context, id int, active bool) error {
	const query = `UPDATE users SET active = $1, updatedat = $2 WHERE id = $3`

	tag, err := repository.db.Exec(context, query, active, time.Now(), id)
	if err != nil {
		return dberr.Wrap(err, "user_set_active")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	const query = `DELETE FROM users WHERE id = $1`

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "user_delete")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// scanOne hydrates a single account row.
func (repository *PostgresRepository) scanOne(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.Fullname,
		&user.Email,
		&user.PasswordHash,
		&user.IDCondominium,
		&user.IDUserType,
		&user.Block,
		&user.Building,
		&user.Number,
		&user.AvatarArchive,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "user_scan")
	}
	return user, nil
}

// scanMany hydrates every row in the result set.
func (repository *PostgresRepository) scanMany(rows pgx.Rows) ([]*User, error) {
	var users []*User
	for rows.Next() {
		user := &User{}
		err := rows.Scan(
			&user.ID,
			&user.Fullname,
			&user.Email,
			&user.PasswordHash,
			&user.IDCondominium,
			&user.IDUserType,
			&user.Block,
			&user.Building,
			&user.Number,
			&user.AvatarArchive,
			&user.Active,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "user_scan")
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
