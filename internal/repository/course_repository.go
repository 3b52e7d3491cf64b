package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/training-center-booking/internal/booking"
	"github.com/iliyamo/training-center-booking/internal/model"
)

// CourseRepo provides access to the courses table.  Besides the browse
// queries it owns the capacity store: ReserveSeatTx is the only place in
// the codebase that mutates seats_available.
type CourseRepo struct {
	db *sql.DB
}

// NewCourseRepo constructs a CourseRepo given a DB handle.
func NewCourseRepo(db *sql.DB) *CourseRepo { return &CourseRepo{db: db} }

const courseColumns = `id, center_id, title, duration_hours, price_cents,
       seats_total, seats_available, start_date, end_date, created_at`

// ListByCenter returns all courses offered by a center, ordered by start
// date so the next upcoming course appears first.
func (r *CourseRepo) ListByCenter(ctx context.Context, centerID uint64) ([]model.Course, error) {
	const q = `SELECT ` + courseColumns + ` FROM courses WHERE center_id = ? ORDER BY start_date, id`
	rows, err := r.db.QueryContext(ctx, q, centerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	courses := make([]model.Course, 0)
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(
			&c.ID, &c.CenterID, &c.Title, &c.DurationHours, &c.PriceCents,
			&c.SeatsTotal, &c.SeatsAvailable, &c.StartDate, &c.EndDate, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}

// CourseDetail is a course joined with its center's name, returned by
// GetDetail for the course page.
type CourseDetail struct {
	model.Course
	CenterName string
}

// GetDetail returns a course together with the name of the center offering
// it.  When the course does not exist, sql.ErrNoRows is returned.
func (r *CourseRepo) GetDetail(ctx context.Context, id uint64) (*CourseDetail, error) {
	const q = `SELECT c.id, c.center_id, c.title, c.duration_hours, c.price_cents,
                      c.seats_total, c.seats_available, c.start_date, c.end_date, c.created_at,
                      ctr.name
               FROM courses c
               JOIN centers ctr ON ctr.id = c.center_id
               WHERE c.id = ?`
	var d CourseDetail
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.CenterID, &d.Title, &d.DurationHours, &d.PriceCents,
		&d.SeatsTotal, &d.SeatsAvailable, &d.StartDate, &d.EndDate, &d.CreatedAt,
		&d.CenterName,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ReserveSeatTx atomically consumes one seat of the course inside the
// given transaction.  The availability check and the decrement are a
// single conditional UPDATE, so two concurrent reservations against a
// course with one seat left can never both succeed.  When the UPDATE
// touches no row, a follow-up existence probe distinguishes an unknown
// course from an exhausted one.
func (r *CourseRepo) ReserveSeatTx(ctx context.Context, tx *sql.Tx, courseID uint64) error {
	const q = `UPDATE courses SET seats_available = seats_available - 1
               WHERE id = ? AND seats_available > 0`
	res, err := tx.ExecContext(ctx, q, courseID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}
	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM courses WHERE id = ?`, courseID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return booking.ErrCourseNotFound
	}
	if err != nil {
		return err
	}
	return booking.ErrNoSeats
}
