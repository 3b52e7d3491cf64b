// Package queue defines message payloads exchanged over the message broker.
package queue

// EnrollmentBookedEvent is published when a booking is successfully
// committed.  It carries enough information for downstream consumers to
// log, notify, or trigger analytics without querying the primary database.
type EnrollmentBookedEvent struct {
	EnrollmentID     uint64 `json:"enrollment_id"`
	UserName         string `json:"user_name"`
	UserPhone        string `json:"user_phone"`
	CourseID         uint64 `json:"course_id"`
	CourseTitle      string `json:"course_title"`
	VerificationCode string `json:"verification_code"`
	BookedAt         string `json:"booked_at"`
}
