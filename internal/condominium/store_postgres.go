// Copyright (c) 2026 Commdominium. All rights reserved.

package condominium

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/commdominium/commdominium/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Create(context context.Context, condominium *Condominium) error {
	const query = `
		INSERT INTO condominium (name, state, city, street, number, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	now := time.Now()
	condominium.CreatedAt = now
	condominium.UpdatedAt = now

	err := repository.db.QueryRow(context, query,
		condominium.Name,
		condominium.State,
		condominium.City,
		condominium.Street,
		condominium.Number,
		condominium.CreatedAt,
		condominium.UpdatedAt,
	).Scan(&condominium.ID)

	return dberr.Wrap(err, "condominium_create")
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Condominium, error) {
	const query = `
		SELECT id, name, state, city, street, number, createdat, updatedat
		FROM condominium WHERE id = $1`

	c := &Condominium{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&c.ID, &c.Name, &c.State, &c.City, &c.Street, &c.Number, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "condominium_find")
	}
	return c, nil
}

func (repository *PostgresRepository) FindAll(context context.Context) ([]*Condominium, error) {
	const query = `
		SELECT id, name, state, city, street, number, createdat, updatedat
		FROM condominium ORDER BY name ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "condominium_find_all")
	}
	defer rows.Close()

	var condominiums []*Condominium
	for rows.Next() {
		c := &Condominium{}
		err := rows.Scan(&c.ID, &c.Name, &c.State, &c.City, &c.Street, &c.Number, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, dberr.Wrap(err, "condominium_scan")
		}
		condominiums = append(condominiums, c)
	}

	return condominiums, rows.Err()
}

func (repository *PostgresRepository) Update(context context.Context, condominium *Condominium) error {
	const query = `
		UPDATE condominium SET name = $1, state = $2, city = $3, street = $4, number = $5, updatedat = $6
		WHERE id = $7`

	condominium.UpdatedAt = time.Now()

	tag, err := repository.db.Exec(context, query,
		condominium.Name,
		condominium.State,
		condominium.City,
		condominium.Street,
		condominium.Number,
		condominium.UpdatedAt,
		condominium.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "condominium_update")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	const query = `DELETE FROM condominium WHERE id = $1`

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "condominium_delete")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}