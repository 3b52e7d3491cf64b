package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/training-center-booking/internal/booking"
	"github.com/iliyamo/training-center-booking/internal/queue"
)

// Booker is the slice of the booking coordinator the handler needs.
type Booker interface {
	Book(ctx context.Context, req booking.Request) (booking.Confirmation, error)
}

// BookingHandler exposes the booking entry point.  It translates the
// coordinator's error kinds into HTTP responses and publishes an
// enrollment.booked event after a successful booking.  Publishing is
// best-effort: a broker outage never fails a committed booking.
type BookingHandler struct {
	Coordinator Booker           // performs the transactional booking
	Enrollments EnrollmentReader // loads course title for the event payload
	Publish     func(ctx context.Context, ev queue.EnrollmentBookedEvent) error // nil disables events
}

// NewBookingHandler constructs a BookingHandler.  Enrollments and Publish
// may be nil, in which case no event is emitted.
func NewBookingHandler(coordinator Booker, enrollments EnrollmentReader, publish func(ctx context.Context, ev queue.EnrollmentBookedEvent) error) *BookingHandler {
	if coordinator == nil {
		panic("nil coordinator passed to NewBookingHandler")
	}
	return &BookingHandler{Coordinator: coordinator, Enrollments: enrollments, Publish: publish}
}

// CreateEnrollment handles POST /v1/enrollments.  The request body must
// contain user_name, user_phone and course_id.  On success it returns 201
// with the enrollment id and verification code.  Failures map to 400
// (validation), 404 (unknown course), 409 (no seats) and 500 (storage);
// in every failure case no seat was consumed and no enrollment exists.
func (h *BookingHandler) CreateEnrollment(c echo.Context) error {
	var body struct {
		UserName  string `json:"user_name"`
		UserPhone string `json:"user_phone"`
		CourseID  uint64 `json:"course_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx := c.Request().Context()
	conf, err := h.Coordinator.Book(ctx, booking.Request{
		UserName:  body.UserName,
		UserPhone: body.UserPhone,
		CourseID:  body.CourseID,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_name, user_phone and course_id are required"})
		case errors.Is(err, booking.ErrCourseNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "course not found"})
		case errors.Is(err, booking.ErrNoSeats):
			return c.JSON(http.StatusConflict, echo.Map{"error": "no seats available"})
		default:
			log.Printf("booking: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create enrollment"})
		}
	}
	h.publishBooked(ctx, body.CourseID, conf)
	return c.JSON(http.StatusCreated, echo.Map{
		"id":                conf.EnrollmentID,
		"verification_code": conf.VerificationCode,
	})
}

// publishBooked emits the enrollment.booked event for a committed booking.
// Errors are logged and dropped.
func (h *BookingHandler) publishBooked(ctx context.Context, courseID uint64, conf booking.Confirmation) {
	if h.Publish == nil || h.Enrollments == nil {
		return
	}
	detail, err := h.Enrollments.GetWithCourse(ctx, conf.EnrollmentID)
	if err != nil {
		log.Printf("booking: load enrollment %d for event: %v", conf.EnrollmentID, err)
		return
	}
	_ = h.Publish(ctx, queue.EnrollmentBookedEvent{
		EnrollmentID:     detail.ID,
		UserName:         detail.UserName,
		UserPhone:        detail.UserPhone,
		CourseID:         courseID,
		CourseTitle:      detail.CourseTitle,
		VerificationCode: detail.VerificationCode,
		BookedAt:         time.Now().UTC().Format(time.RFC3339),
	})
}
