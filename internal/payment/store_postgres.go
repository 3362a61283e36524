// Copyright (c) 2026 Commdominium. All rights reserved.

package payment

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/commdominium/commdominium/internal/platform/dberr"
)

const paymentColumns = `id, billarchive, duedate, paid, id_user, createdat, updatedat`

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Create(context context.Context, payment *Payment) error {
	const query = `
		INSERT INTO payment (billarchive, duedate, paid, id_user, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	err := repository.db.QueryRow(context, query,
		payment.BillArchive,
		payment.DueDate,
		payment.Paid,
		payment.IDUser,
		payment.CreatedAt,
		payment.UpdatedAt,
	).Scan(&payment.ID)

	return dberr.Wrap(err, "payment_create")
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payment WHERE id = $1`

	payment := &Payment{}
	err := scanPayment(repository.db.QueryRow(context, query, id), payment)
	if err != nil {
		return nil, dberr.Wrap(err, "payment_find")
	}
	return payment, nil
}

func (repository *PostgresRepository) FindAll(context context.Context) ([]*Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payment ORDER BY duedate DESC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "payment_find_all")
	}
	return collectPayments(rows)
}

func (repository *PostgresRepository) FindAllByUser(context context.Context, userID int) ([]*Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payment WHERE id_user = $1 ORDER BY duedate DESC`

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "payment_find_by_user")
	}
	return collectPayments(rows)
}

func (repository *PostgresRepository) FindByUserAndMonth(context context.Context, userID, month, year int) (*Payment, error) {
	const query = `
		SELECT ` + paymentColumns + `
		FROM payment
		WHERE id_user = $1
		  AND EXTRACT(MONTH FROM duedate) = $2
		  AND EXTRACT(YEAR FROM duedate) = $3
		LIMIT 1`

	payment := &Payment{}
	err := scanPayment(repository.db.QueryRow(context, query, userID, month, year), payment)
	if err != nil {
		return nil, dberr.Wrap(err, "payment_find_by_month")
	}
	return payment, nil
}

func (repository *PostgresRepository) Update(context context.Context, payment *Payment) error {
	const query = `
		UPDATE payment SET billarchive = $1, duedate = $2, paid = $3, updatedat = $4
		WHERE id = $5`

	payment.UpdatedAt = time.Now()

	tag, err := repository.db.Exec(context, query,
		payment.BillArchive,
		payment.DueDate,
		payment.Paid,
		payment.UpdatedAt,
		payment.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "payment_update")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	const query = `DELETE FROM payment WHERE id = $1`

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "payment_delete")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func scanPayment(row pgx.Row, payment *Payment) error {
	return row.Scan(
		&payment.ID,
		&payment.BillArchive,
		&payment.DueDate,
		&payment.Paid,
		&payment.IDUser,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
}

func collectPayments(rows pgx.Rows) ([]*Payment, error) {
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		payment := &Payment{}
		if err := scanPayment(rows, payment); err != nil {
			return nil, dberr.Wrap(err, "payment_scan")
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}
