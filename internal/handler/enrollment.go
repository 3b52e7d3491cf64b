package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/training-center-booking/internal/repository"
)

// EnrollmentReader is the slice of the enrollment repository the read
// handlers need.
type EnrollmentReader interface {
	GetWithCourse(ctx context.Context, id uint64) (*repository.EnrollmentDetail, error)
}

// EnrollmentHandler exposes the enrollment read path used by the
// certificate renderer: a single lookup joining the enrollment to its
// course's title.
type EnrollmentHandler struct {
	Enrollments EnrollmentReader // provides access to enrollment data
}

// GetEnrollment handles GET /v1/enrollments/:id.  It returns the
// enrollment with its course title and verification code — everything the
// certificate document needs — or 404 when the enrollment does not exist.
func (h *EnrollmentHandler) GetEnrollment(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid enrollment id"})
	}
	detail, err := h.Enrollments.GetWithCourse(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "enrollment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": detail})
}
