// Copyright (c) 2026 Commdominium. All rights reserved.

package notice

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

const noticeColumns = `id, title, message, eventday, id_noticetype, id_condominium, createdat, updatedat`

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Create(context context.Context, notice *Notice) error {
	const query = `
		INSERT INTO notices (title, message, eventday, id_noticetype, id_condominium, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	now := time.Now()
	notice.CreatedAt = now
	notice.UpdatedAt = now

	err := repository.db.QueryRow(context, query,
		notice.Title,
		notice.Message,
		notice.EventDay,
		notice.IDNoticeType,
		notice.IDCondominium,
		notice.CreatedAt,
		notice.UpdatedAt,
	).Scan(&notice.ID)

	return dberr.Wrap(err, "notice_create")
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Notice, error) {
	const query = `SELECT ` + noticeColumns + ` FROM notices WHERE id = $1`

	notice := &Notice{}
	err := scanNotice(repository.db.QueryRow(context, query, id), notice)
	if err != nil {
		return nil, dberr.Wrap(err, "notice_find")
	}
	return notice, nil
}

func (repository *PostgresRepository) FindAll(context context.Context) ([]*Notice, error) {
	const query = `SELECT ` + noticeColumns + ` FROM notices ORDER BY createdat DESC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "notice_find_all")
	}
	return collectNotices(rows)
}

func (repository *PostgresRepository) FindAllByCondominium(context context.Context, condominiumID int) ([]*Notice, error) {
	const query = `SELECT ` + noticeColumns + ` FROM notices WHERE id_condominium = $1 ORDER BY createdat DESC`

	rows, err := repository.db.Query(context, query, condominiumID)
	if err != nil {
		return nil, dberr.Wrap(err, "notice_find_by_condominium")
	}
	return collectNotices(rows)
}

func (repository *PostgresRepository) Update(context context.Context, notice *Notice) error {
	const query = `
		UPDATE notices
		SET title = $1, message = $2, eventday = $3, id_noticetype = $4, id_condominium = $5, updatedat = $6
		WHERE id = $7`

	notice.UpdatedAt = time.Now()

	tag, err := repository.db.Exec(context, query,
		notice.Title,
		notice.Message,
		notice.EventDay,
		notice.IDNoticeType,
		notice.IDCondominium,
		notice.UpdatedAt,
		notice.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "notice_update")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	const query = `DELETE FROM notices WHERE id = $1`

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "notice_delete")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func scanNotice(row pgx.Row, notice *Notice) error {
	return row.Scan(
		&notice.ID,
		&notice.Title,
		&notice.Message,
		&notice.EventDay,
		&notice.IDNoticeType,
		&notice.IDCondominium,
		&notice.CreatedAt,
		&notice.UpdatedAt,
	)
}

func collectNotices(rows pgx.Rows) ([]*Notice, error) {
	defer rows.Close()

	var notices []*Notice
	for rows.Next() {
		notice := &Notice{}
		if err := scanNotice(rows, notice); err != nil {
			return nil, dberr.Wrap(err, "notice_scan")
		}
		notices = append(notices, notice)
	}
	return notices, rows.Err()
}
