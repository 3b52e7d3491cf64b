package model

import "time"

// Center represents a licensed training center that offers courses.
// Centers are created by an administrative process and are read-only
// for this service.
//
// Fields:
//
//	ID            – primary key identifier.
//	Name          – display name of the center.
//	Governorate   – region used for filtering in browse queries.
//	Address       – street address shown to users.
//	LicenseNumber – official license reference of the center.
//	CreatedAt     – creation timestamp.
type Center struct {
	ID            uint64    // centers.id
	Name          string    // centers.name
	Governorate   string    // centers.governorate
	Address       string    // centers.address
	LicenseNumber string    // centers.license_number
	CreatedAt     time.Time // centers.created_at
}
