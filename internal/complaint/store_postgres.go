// Copyright (c) 2026 Commdominium. All rights reserved.

package complaint

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/commdominium/commdominium/internal/platform/dberr"
)

// complaintColumns joins the author row so listings carry attribution.
const complaintColumns = `
	c.id, c.message, c.resolved, c.id_user, c.id_condominium,
	u.fullname, COALESCE(u.avatararchive, ''), c.createdat, c.updatedat`

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Create(context context.Context, complaint *Complaint) error {
	const query = `
		INSERT INTO complaint (message, resolved, id_user, id_condominium, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	now := time.Now()
	complaint.CreatedAt = now
	complaint.UpdatedAt = now

	err := repository.db.QueryRow(context, query,
		complaint.Message,
		complaint.Resolved,
		complaint.IDUser,
		complaint.IDCondominium,
		complaint.CreatedAt,
		complaint.UpdatedAt,
	).Scan(&complaint.ID)

	return dberr.Wrap(err, "complaint_create")
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Complaint, error) {
	const query = `
		SELECT ` + complaintColumns + `
		FROM complaint c JOIN users u ON u.id = c.id_user
		WHERE c.id = $1`

	complaint := &Complaint{}
	err := scanComplaint(repository.db.QueryRow(context, query, id), complaint)
	if err != nil {
		return nil, dberr.Wrap(err, "complaint_find")
	}
	return complaint, nil
}

func (repository *PostgresRepository) FindAll(context context.Context) ([]*Complaint, error) {
	const query = `
		SELECT ` + complaintColumns + `
		FROM complaint c JOIN users u ON u.id = c.id_user
		ORDER BY c.createdat DESC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "complaint_find_all")
	}
	return collectComplaints(rows)
}

func (repository *PostgresRepository) FindAllByCondominium(context context.Context, condominiumID int) ([]*Complaint, error) {
	const query = `
		SELECT ` + complaintColumns + `
		FROM complaint c JOIN users u ON u.id = c.id_user
		WHERE c.id_condominium = $1
		ORDER BY c.createdat DESC`

	rows, err := repository.db.Query(context, query, condominiumID)
	if err != nil {
		return nil, dberr.Wrap(err, "complaint_find_by_condominium")
	}
	return collectComplaints(rows)
}

func (repository *PostgresRepository) FindAllByUser(context context.Context, userID int) ([]*Complaint, error) {
	const query = `
		SELECT ` + complaintColumns + `
		FROM complaint c JOIN users u ON u.id = c.id_user
		WHERE c.id_user = $1
		ORDER BY c.createdat DESC`

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "complaint_find_by_user")
	}
	return collectComplaints(rows)
}

func (repository *PostgresRepository) Update(context context.Context, complaint *Complaint) error {
	const query = `
		UPDATE complaint SET message = $1, updatedat = $2
		WHERE id = $3`

	complaint.UpdatedAt = time.Now()

	tag, err := repository.db.Exec(context, query, complaint.Message, complaint.UpdatedAt, complaint.ID)
	if err != nil {
		return dberr.Wrap(err, "complaint_update")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SetResolved(context context.Context, id int, resolved bool) error {
	const query = `UPDATE complaint SET resolved = $1, updatedat = $2 WHERE id = $3`

	tag, err := repository.db.Exec(context, query, resolved, time.Now(), id)
	if err != nil {
		return dberr.Wrap(err, "complaint_set_resolved")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	const query = `DELETE FROM complaint WHERE id = $1`

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "complaint_delete")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func scanComplaint(row pgx.Row, complaint *Complaint) error {
	return row.Scan(
		&complaint.ID,
		&complaint.Message,
		&complaint.Resolved,
		&complaint.IDUser,
		&complaint.IDCondominium,
		&complaint.Fullname,
		&complaint.AvatarArchive,
		&complaint.CreatedAt,
		&complaint.UpdatedAt,
	)
}

func collectComplaints(rows pgx.Rows) ([]*Complaint, error) {
	defer rows.Close()

	var complaints []*Complaint
	for rows.Next() {
		complaint := &Complaint{}
		if err := scanComplaint(rows, complaint); err != nil {
			return nil, dberr.Wrap(err, "complaint_scan")
		}
		complaints = append(complaints, complaint)
	}
	return complaints, rows.Err()
}
