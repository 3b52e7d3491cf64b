package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/iliyamo/training-center-booking/internal/booking"
)

// mysqlDuplicateEntry is the MySQL error number raised when an INSERT
// violates a unique index (here: enrollments.verification_code).
const mysqlDuplicateEntry = 1062

// EnrollmentRepo provides access to the enrollments table.
type EnrollmentRepo struct {
	db *sql.DB
}

// NewEnrollmentRepo constructs an EnrollmentRepo given a DB handle.
func NewEnrollmentRepo(db *sql.DB) *EnrollmentRepo { return &EnrollmentRepo{db: db} }

// CreateTx inserts a new enrollment within the scope of an existing
// transaction and populates the generated ID on the passed record.  A
// collision on the verification_code unique index is reported as
// booking.ErrDuplicateCode; in MySQL a duplicate-key failure does not
// abort the transaction, so the caller may retry the insert with a fresh
// code inside the same unit of work.
func (r *EnrollmentRepo) CreateTx(ctx context.Context, tx *sql.Tx, e *booking.Enrollment) error {
	const q = `INSERT INTO enrollments (user_name, user_phone, course_id, status, verification_code)
               VALUES (?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q, e.UserName, e.UserPhone, e.CourseID, e.Status, e.VerificationCode)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
			return booking.ErrDuplicateCode
		}
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return nil
}

// EnrollmentDetail is an enrollment joined with its course's title.  It is
// the payload the certificate renderer consumes: the user's name, the
// course title and the verification code end up on the document.
type EnrollmentDetail struct {
	ID               uint64    `json:"id"`
	UserName         string    `json:"user_name"`
	UserPhone        string    `json:"user_phone"`
	CourseID         uint64    `json:"course_id"`
	CourseTitle      string    `json:"course_title"`
	Status           string    `json:"status"`
	VerificationCode string    `json:"verification_code"`
	CreatedAt        time.Time `json:"created_at"`
}

// GetWithCourse returns a single enrollment together with the title of the
// course it belongs to.  When the enrollment does not exist, sql.ErrNoRows
// is returned.  Pure read; no state is touched.
func (r *EnrollmentRepo) GetWithCourse(ctx context.Context, id uint64) (*EnrollmentDetail, error) {
	const q = `SELECT e.id, e.user_name, e.user_phone, e.course_id, c.title,
                      e.status, e.verification_code, e.created_at
               FROM enrollments e
               JOIN courses c ON c.id = e.course_id
               WHERE e.id = ?`
	var d EnrollmentDetail
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.UserName, &d.UserPhone, &d.CourseID, &d.CourseTitle,
		&d.Status, &d.VerificationCode, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
