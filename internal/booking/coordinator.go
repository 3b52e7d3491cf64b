package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// maxCodeAttempts bounds how many verification codes the coordinator tries
// before giving up on a booking.  With 16^8 possible codes more than one
// collision in a row means the code source is broken, not unlucky.
const maxCodeAttempts = 3

// Request carries the fields of a booking attempt as received from the
// HTTP layer.
type Request struct {
	UserName  string
	UserPhone string
	CourseID  uint64
}

// Confirmation is returned for a successful booking.
type Confirmation struct {
	EnrollmentID     uint64
	VerificationCode string
}

// Enrollment is the record the coordinator asks the store to persist.  The
// store assigns the ID.
type Enrollment struct {
	ID               uint64
	UserName         string
	UserPhone        string
	CourseID         uint64
	Status           string
	VerificationCode string
}

// StatusBooked is the only status a new enrollment can have.
const StatusBooked = "booked"

// Tx is one atomic unit of work spanning the seat reservation and the
// enrollment insert.  Either both effects become visible at Commit or
// neither does: a seat can never be consumed without a matching enrollment
// row, and vice versa.
//
// ReserveSeat must be atomic with respect to concurrent reservations on
// the same course: the availability check and the decrement are one
// indivisible operation.  It returns ErrCourseNotFound or ErrNoSeats to
// report the two non-retryable failures.
//
// CreateEnrollment persists the record, populates its ID, and returns
// ErrDuplicateCode when the verification code is already taken.
type Tx interface {
	ReserveSeat(ctx context.Context, courseID uint64) error
	CreateEnrollment(ctx context.Context, e *Enrollment) error
	Commit() error
	Rollback() error
}

// Store opens units of work against capacity and enrollment storage.
type Store interface {
	Begin(ctx context.Context) (Tx, error)
}

// Coordinator validates booking requests and drives the reserve-then-persist
// sequence inside a single transaction.
type Coordinator struct {
	store   Store
	newCode func() string
}

// NewCoordinator constructs a Coordinator backed by the given store.  Codes
// are produced by NewVerificationCode.
func NewCoordinator(store Store) *Coordinator {
	if store == nil {
		panic("nil store passed to NewCoordinator")
	}
	return &Coordinator{store: store, newCode: NewVerificationCode}
}

// Book attempts to reserve one seat in the requested course and record the
// enrollment.  On success it returns the enrollment ID and verification
// code.  Failures are reported as ErrValidation, ErrCourseNotFound,
// ErrNoSeats, or a wrapped storage error; in every failure case no seat is
// consumed and no enrollment row exists.
func (co *Coordinator) Book(ctx context.Context, req Request) (Confirmation, error) {
	if strings.TrimSpace(req.UserName) == "" ||
		strings.TrimSpace(req.UserPhone) == "" ||
		req.CourseID == 0 {
		return Confirmation{}, ErrValidation
	}

	tx, err := co.store.Begin(ctx)
	if err != nil {
		return Confirmation{}, fmt.Errorf("begin booking transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := tx.ReserveSeat(ctx, req.CourseID); err != nil {
		if errors.Is(err, ErrCourseNotFound) || errors.Is(err, ErrNoSeats) {
			return Confirmation{}, err
		}
		return Confirmation{}, fmt.Errorf("reserve seat: %w", err)
	}

	enr := &Enrollment{
		UserName:  req.UserName,
		UserPhone: req.UserPhone,
		CourseID:  req.CourseID,
		Status:    StatusBooked,
	}
	for attempt := 1; ; attempt++ {
		enr.VerificationCode = co.newCode()
		err = tx.CreateEnrollment(ctx, enr)
		if err == nil {
			break
		}
		if errors.Is(err, ErrDuplicateCode) && attempt < maxCodeAttempts {
			continue
		}
		return Confirmation{}, fmt.Errorf("create enrollment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Confirmation{}, fmt.Errorf("commit booking: %w", err)
	}
	committed = true
	return Confirmation{EnrollmentID: enr.ID, VerificationCode: enr.VerificationCode}, nil
}
