// Copyright (c) 2026 Commdominium. All rights reserved.

package usertype

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/commdominium/commdominium/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListUserTypes(context context.Context) ([]*UserType, error) {
	const query = `SELECT id, type FROM usertype ORDER BY id ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_usertypes")
	}
	defer rows.Close()

	var types []*UserType
	for rows.Next() {
		t := &UserType{}
		if err := rows.Scan(&t.ID, &t.Type); err != nil {
			return nil, dberr.Wrap(err, "scan_usertype")
		}
		types = append(types, t)
	}

	return types, nil
}

func (repository *PostgresRepository) GetUserTypeByID(context context.Context, id int) (*UserType, error) {
	const query = `SELECT id, type FROM usertype WHERE id = $1`

	t := &UserType{}
	err := repository.db.QueryRow(context, query, id).Scan(&t.ID, &t.Type)
	return t, dberr.Wrap(err, "get_usertype")
}