package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/savioruz/futsal/pkg/helper"
	"github.com/savioruz/futsal/pkg/logger"
	"github.com/savioruz/futsal/pkg/postgres"
)

//go:embed schema.sql
var Schema string

const (
	identifier = "repository - booking - %s"

	maxInsertAttempts = 3

	pgUniqueViolation = "23505"

	bookingColumns = `id, name, phone, booking_date, start_time, duration, court_type, price, status, created_at, updated_at`

	lockSlot = `SELECT pg_advisory_xact_lock(hashtext($1))`

	listActiveOn = `SELECT ` + bookingColumns + ` FROM bookings
WHERE booking_date = $1 AND court_type = $2 AND status <> 'cancelled'
ORDER BY id`

	getBookingForUpdate = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`

	getBooking = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	insertBooking = `INSERT INTO bookings (` + bookingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + bookingColumns

	updateBooking = `UPDATE bookings
SET name = $2, phone = $3, booking_date = $4, start_time = $5, duration = $6,
    court_type = $7, price = $8, status = $9, updated_at = $10
WHERE id = $1
RETURNING ` + bookingColumns

	deleteBooking = `DELETE FROM bookings WHERE id = $1`
)

type postgresRepository struct {
	db     postgres.PgxIface
	ids    *helper.IDGenerator
	logger logger.Interface
	now    func() time.Time
}

func NewPostgres(db postgres.PgxIface, ids *helper.IDGenerator, l logger.Interface) Repository {
	return newPostgres(db, ids, l, time.Now)
}

func newPostgres(db postgres.PgxIface, ids *helper.IDGenerator, l logger.Interface, now func() time.Time) *postgresRepository {
	return &postgresRepository{db: db, ids: ids, logger: l, now: now}
}

// Migrate applies the embedded schema. Statements are idempotent.
func Migrate(ctx context.Context, db postgres.DBTX) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: migrate: %w", err)
	}

	return nil
}

func (r *postgresRepository) Insert(ctx context.Context, b Booking) (res Booking, err error) {
	for attempt := 0; attempt < maxInsertAttempts; attempt++ {
		res, err = r.insert(ctx, b)
		if !isUniqueViolation(err) {
			return res, err
		}

		r.logger.Warn(identifier, "id collision on insert, retrying")
	}

	return res, err
}

func (r *postgresRepository) insert(ctx context.Context, b Booking) (res Booking, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return res, err
	}

	defer r.rollback(ctx, tx)

	if err = r.lock(ctx, tx, b.Date, b.CourtType); err != nil {
		return res, err
	}

	b.ID = 0

	if b.Active() {
		existing, err := r.activeOn(ctx, tx, b.Date, b.CourtType)
		if err != nil {
			return res, err
		}

		if _, taken := FindConflict(existing, b); taken {
			return res, ErrSlotTaken
		}
	}

	now := r.now().UTC()
	b.ID = r.ids.Next()
	b.CreatedAt = now
	b.UpdatedAt = now

	args, err := insertArgs(b)
	if err != nil {
		return res, err
	}

	res, err = scanBooking(tx.QueryRow(ctx, insertBooking, args...))
	if err != nil {
		return res, err
	}

	if err = tx.Commit(ctx); err != nil {
		return Booking{}, err
	}

	return res, nil
}

func (r *postgresRepository) List(ctx context.Context, f Filter) ([]Booking, error) {
	var (
		conds []string
		args  []any
	)

	if f.Date != "" {
		args = append(args, helper.PgDate(f.Date))
		conds = append(conds, fmt.Sprintf("booking_date = $%d", len(args)))
	}

	if f.CourtType != "" {
		args = append(args, f.CourtType)
		conds = append(conds, fmt.Sprintf("court_type = $%d", len(args)))
	}

	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}

	query += ` ORDER BY id`

	return queryBookings(ctx, r.db, query, args...)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, getBooking, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrNotFound
	}

	return b, err
}

func (r *postgresRepository) Update(ctx context.Context, id int64, mutate func(*Booking) error) (res Booking, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return res, err
	}

	defer r.rollback(ctx, tx)

	current, err := scanBooking(tx.QueryRow(ctx, getBookingForUpdate, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, ErrNotFound
		}

		return res, err
	}

	next := current
	if err = mutate(&next); err != nil {
		return res, err
	}

	next.ID = current.ID
	next.CreatedAt = current.CreatedAt

	if err = r.lock(ctx, tx, next.Date, next.CourtType); err != nil {
		return res, err
	}

	if next.Active() {
		existing, err := r.activeOn(ctx, tx, next.Date, next.CourtType)
		if err != nil {
			return res, err
		}

		if _, taken := FindConflict(existing, next); taken {
			return res, ErrSlotTaken
		}
	}

	next.UpdatedAt = r.now().UTC()

	startTime, err := helper.PgTimeFromString(next.Time)
	if err != nil {
		return res, err
	}

	res, err = scanBooking(tx.QueryRow(ctx, updateBooking,
		next.ID,
		next.Name,
		next.Phone,
		helper.PgDate(next.Date),
		startTime,
		int32(next.Duration),
		next.CourtType,
		helper.PgInt64(next.Price),
		next.Status,
		helper.PgTimestamp(next.UpdatedAt),
	))
	if err != nil {
		return res, err
	}

	if err = tx.Commit(ctx); err != nil {
		return Booking{}, err
	}

	return res, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteBooking, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// lock serializes writers of one date and court until the transaction ends.
func (r *postgresRepository) lock(ctx context.Context, tx pgx.Tx, date, courtType string) error {
	if _, err := tx.Exec(ctx, lockSlot, date+"|"+courtType); err != nil {
		return fmt.Errorf("repository: lock slot: %w", err)
	}

	return nil
}

func (r *postgresRepository) activeOn(ctx context.Context, tx pgx.Tx, date, courtType string) ([]Booking, error) {
	return queryBookings(ctx, tx, listActiveOn, helper.PgDate(date), courtType)
}

func queryBookings(ctx context.Context, db postgres.DBTX, query string, args ...any) ([]Booking, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func scanBooking(row pgx.Row) (Booking, error) {
	var (
		b         Booking
		date      pgtype.Date
		startTime pgtype.Time
		duration  int32
		price     pgtype.Numeric
		createdAt pgtype.Timestamp
		updatedAt pgtype.Timestamp
	)

	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Phone,
		&date,
		&startTime,
		&duration,
		&b.CourtType,
		&price,
		&b.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return Booking{}, err
	}

	b.Date = helper.DateFromPg(date)
	b.Duration = int(duration)
	b.Price = helper.Int64FromPg(price)
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	if b.Time, err = helper.PgTimeToString(startTime); err != nil {
		return Booking{}, err
	}

	return b, nil
}

func insertArgs(b Booking) ([]any, error) {
	startTime, err := helper.PgTimeFromString(b.Time)
	if err != nil {
		return nil, err
	}

	return []any{
		b.ID,
		b.Name,
		b.Phone,
		helper.PgDate(b.Date),
		startTime,
		int32(b.Duration),
		b.CourtType,
		helper.PgInt64(b.Price),
		b.Status,
		helper.PgTimestamp(b.CreatedAt),
		helper.PgTimestamp(b.UpdatedAt),
	}, nil
}

func (r *postgresRepository) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		r.logger.Error(identifier, "error rolling back transaction: "+err.Error())
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
