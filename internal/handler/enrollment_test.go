package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/training-center-booking/internal/repository"
)

// stubEnrollmentReader returns a canned detail or error and records the
// last id it was asked for.
type stubEnrollmentReader struct {
	detail *repository.EnrollmentDetail
	err    error
	lastID uint64
}

func (s *stubEnrollmentReader) GetWithCourse(ctx context.Context, id uint64) (*repository.EnrollmentDetail, error) {
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	return s.detail, nil
}

func getEnrollment(t *testing.T, r EnrollmentReader, id string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/enrollments/"+id, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/enrollments/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)

	h := &EnrollmentHandler{Enrollments: r}
	if err := h.GetEnrollment(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestGetEnrollmentSuccess(t *testing.T) {
	stub := &stubEnrollmentReader{detail: &repository.EnrollmentDetail{
		ID:               7,
		UserName:         "Ali",
		UserPhone:        "9999",
		CourseID:         1,
		CourseTitle:      "Introduction to Programming",
		Status:           "booked",
		VerificationCode: "AB12CD34",
	}}
	rec := getEnrollment(t, stub, "7")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if stub.lastID != 7 {
		t.Fatalf("repository asked for id %d, want 7", stub.lastID)
	}
	var resp struct {
		Item repository.EnrollmentDetail `json:"item"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	// The certificate renderer needs the user's name, the course title and
	// the verification code.
	if resp.Item.UserName != "Ali" {
		t.Fatalf("user_name = %q, want %q", resp.Item.UserName, "Ali")
	}
	if resp.Item.CourseTitle != "Introduction to Programming" {
		t.Fatalf("course_title = %q, want %q", resp.Item.CourseTitle, "Introduction to Programming")
	}
	if resp.Item.VerificationCode != "AB12CD34" {
		t.Fatalf("verification_code = %q, want %q", resp.Item.VerificationCode, "AB12CD34")
	}
}

func TestGetEnrollmentNotFound(t *testing.T) {
	rec := getEnrollment(t, &stubEnrollmentReader{err: sql.ErrNoRows}, "99")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if _, ok := resp["error"]; !ok {
		t.Fatalf("response %v carries no error message", resp)
	}
}

func TestGetEnrollmentInvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-1"} {
		stub := &stubEnrollmentReader{}
		rec := getEnrollment(t, stub, id)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status for id %q = %d, want 400", id, rec.Code)
		}
		if stub.lastID != 0 {
			t.Fatalf("repository queried for invalid id %q", id)
		}
	}
}

func TestGetEnrollmentStorageError(t *testing.T) {
	rec := getEnrollment(t, &stubEnrollmentReader{err: errors.New("connection lost")}, "7")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
