// Copyright (c) 2026 Commdominium. All rights reserved.

package noticetype

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

func (repository *PostgresRepository) ListNoticeTypes(context context.Context) ([]*NoticeType, error) {
	const query = `SELECT id, type FROM noticetype ORDER BY id ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_noticetypes")
	}
	defer rows.Close()

	var types []*NoticeType
	for rows.Next() {
		t := &NoticeType{}
		if err := rows.Scan(&t.ID, &t.Type); err != nil {
			return nil, dberr.Wrap(err, "scan_noticetype")
		}
		types = append(types, t)
	}

	return types, nil
}