// Package handler exposes HTTP handlers for the API.  This file defines the
// public browsing endpoints: unauthenticated users can list training
// centers (optionally filtered by governorate), inspect a single center
// with its courses, and view a course with its center's name.  All browse
// routes are pure reads.
package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/training-center-booking/internal/model"
	"github.com/iliyamo/training-center-booking/internal/repository"
)

// dateLayout is how course start/end dates are rendered in responses.
const dateLayout = "2006-01-02"

// CenterReader is the slice of the center repository the browse handlers
// need.
type CenterReader interface {
	List(ctx context.Context, governorate string) ([]model.Center, error)
	GetByID(ctx context.Context, id uint64) (*model.Center, error)
}

// CourseReader is the slice of the course repository the browse handlers
// need.
type CourseReader interface {
	ListByCenter(ctx context.Context, centerID uint64) ([]model.Course, error)
	GetDetail(ctx context.Context, id uint64) (*repository.CourseDetail, error)
}

// PublicHandler aggregates the repositories needed for browsing.
type PublicHandler struct {
	Centers CenterReader // provides access to center data
	Courses CourseReader // provides access to course data
}

// PublicCourse represents a course in browse responses.
type PublicCourse struct {
	ID             uint64 `json:"id"`
	CenterID       uint64 `json:"center_id"`
	Title          string `json:"title"`
	DurationHours  uint32 `json:"duration_hours"`
	PriceCents     uint32 `json:"price_cents"`
	SeatsTotal     uint32 `json:"seats_total"`
	SeatsAvailable uint32 `json:"seats_available"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
}

// PublicCenter represents a center with its courses in browse responses.
type PublicCenter struct {
	ID            uint64         `json:"id"`
	Name          string         `json:"name"`
	Governorate   string         `json:"governorate"`
	Address       string         `json:"address"`
	LicenseNumber string         `json:"license_number"`
	Courses       []PublicCourse `json:"courses"`
}

// PublicCourseDetail extends PublicCourse with the offering center's name
// for the course page.
type PublicCourseDetail struct {
	PublicCourse
	CenterName string `json:"center_name"`
}

func toPublicCourse(c model.Course) PublicCourse {
	return PublicCourse{
		ID:             c.ID,
		CenterID:       c.CenterID,
		Title:          c.Title,
		DurationHours:  c.DurationHours,
		PriceCents:     c.PriceCents,
		SeatsTotal:     c.SeatsTotal,
		SeatsAvailable: c.SeatsAvailable,
		StartDate:      formatDate(c.StartDate),
		EndDate:        formatDate(c.EndDate),
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

// GetCenters handles GET /v1/centers.  The optional ?governorate= query
// parameter narrows the list to one region.  Every center is returned
// with its courses so clients can render the catalogue in one request.
func (h *PublicHandler) GetCenters(c echo.Context) error {
	ctx := c.Request().Context()
	centers, err := h.Centers.List(ctx, c.QueryParam("governorate"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]PublicCenter, 0, len(centers))
	for _, ctr := range centers {
		courses, err := h.Courses.ListByCenter(ctx, ctr.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		pc := PublicCenter{
			ID:            ctr.ID,
			Name:          ctr.Name,
			Governorate:   ctr.Governorate,
			Address:       ctr.Address,
			LicenseNumber: ctr.LicenseNumber,
			Courses:       make([]PublicCourse, 0, len(courses)),
		}
		for _, crs := range courses {
			pc.Courses = append(pc.Courses, toPublicCourse(crs))
		}
		out = append(out, pc)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetCenter handles GET /v1/centers/:id.  It returns one center with its
// courses, or 404 when the center does not exist.
func (h *PublicHandler) GetCenter(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid center id"})
	}
	ctx := c.Request().Context()
	ctr, err := h.Centers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "center not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	courses, err := h.Courses.ListByCenter(ctx, ctr.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := PublicCenter{
		ID:            ctr.ID,
		Name:          ctr.Name,
		Governorate:   ctr.Governorate,
		Address:       ctr.Address,
		LicenseNumber: ctr.LicenseNumber,
		Courses:       make([]PublicCourse, 0, len(courses)),
	}
	for _, crs := range courses {
		out.Courses = append(out.Courses, toPublicCourse(crs))
	}
	return c.JSON(http.StatusOK, echo.Map{"item": out})
}

// GetCourse handles GET /v1/courses/:id.  It returns the course together
// with the name of its center, or 404 when the course does not exist.
func (h *PublicHandler) GetCourse(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid course id"})
	}
	ctx := c.Request().Context()
	detail, err := h.Courses.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "course not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := PublicCourseDetail{
		PublicCourse: toPublicCourse(detail.Course),
		CenterName:   detail.CenterName,
	}
	return c.JSON(http.StatusOK, echo.Map{"item": out})
}
