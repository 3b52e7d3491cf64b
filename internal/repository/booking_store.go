package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/training-center-booking/internal/booking"
)

// BookingStore adapts the SQL repositories to the booking.Store interface.
// Each unit of work is one database transaction, so the seat decrement and
// the enrollment insert commit or roll back together.
type BookingStore struct {
	db          *sql.DB
	courses     *CourseRepo
	enrollments *EnrollmentRepo
}

// NewBookingStore constructs a BookingStore and panics if any dependency
// is nil.
func NewBookingStore(db *sql.DB, courses *CourseRepo, enrollments *EnrollmentRepo) *BookingStore {
	if db == nil || courses == nil || enrollments == nil {
		panic("nil dependency passed to NewBookingStore")
	}
	return &BookingStore{db: db, courses: courses, enrollments: enrollments}
}

// Begin opens a new transaction-backed unit of work.
func (s *BookingStore) Begin(ctx context.Context) (booking.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &bookingTx{tx: tx, store: s}, nil
}

// bookingTx carries one booking's transaction and delegates the two
// operations to the owning repositories.
type bookingTx struct {
	tx    *sql.Tx
	store *BookingStore
}

func (t *bookingTx) ReserveSeat(ctx context.Context, courseID uint64) error {
	return t.store.courses.ReserveSeatTx(ctx, t.tx, courseID)
}

func (t *bookingTx) CreateEnrollment(ctx context.Context, e *booking.Enrollment) error {
	return t.store.enrollments.CreateTx(ctx, t.tx, e)
}

func (t *bookingTx) Commit() error { return t.tx.Commit() }

func (t *bookingTx) Rollback() error { return t.tx.Rollback() }
