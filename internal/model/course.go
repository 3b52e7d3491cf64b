package model

import "time"

// Course represents a scheduled training offering with a fixed seat
// capacity.  Courses belong to a center and are the only entity whose
// state this service mutates: SeatsAvailable is decremented once per
// successful enrollment and never goes below zero or above SeatsTotal.
//
// Fields:
//
//	ID             – primary key identifier.
//	CenterID       – center offering the course.
//	Title          – course title shown to users and on certificates.
//	DurationHours  – total instruction hours.
//	PriceCents     – course price in cents.
//	SeatsTotal     – capacity fixed at creation time.
//	SeatsAvailable – remaining seats; mutated only by the atomic reserve.
//	StartDate      – first day of the course.
//	EndDate        – last day of the course.
//	CreatedAt      – creation timestamp.
type Course struct {
	ID             uint64    // courses.id
	CenterID       uint64    // courses.center_id
	Title          string    // courses.title
	DurationHours  uint32    // courses.duration_hours
	PriceCents     uint32    // courses.price_cents
	SeatsTotal     uint32    // courses.seats_total
	SeatsAvailable uint32    // courses.seats_available
	StartDate      time.Time // courses.start_date
	EndDate        time.Time // courses.end_date
	CreatedAt      time.Time // courses.created_at
}
