package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/training-center-booking/internal/model"
	"github.com/iliyamo/training-center-booking/internal/repository"
)

// stubCenterReader serves canned centers and records the governorate
// filter it was asked for.
type stubCenterReader struct {
	centers         []model.Center
	center          *model.Center
	err             error
	lastGovernorate string
}

func (s *stubCenterReader) List(ctx context.Context, governorate string) ([]model.Center, error) {
	s.lastGovernorate = governorate
	if s.err != nil {
		return nil, s.err
	}
	return s.centers, nil
}

func (s *stubCenterReader) GetByID(ctx context.Context, id uint64) (*model.Center, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.center, nil
}

// stubCourseReader serves canned courses.
type stubCourseReader struct {
	courses []model.Course
	detail  *repository.CourseDetail
	err     error
}

func (s *stubCourseReader) ListByCenter(ctx context.Context, centerID uint64) ([]model.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.courses, nil
}

func (s *stubCourseReader) GetDetail(ctx context.Context, id uint64) (*repository.CourseDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.detail, nil
}

func browseContext(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sampleCourse() model.Course {
	return model.Course{
		ID:             1,
		CenterID:       1,
		Title:          "Introduction to Programming",
		DurationHours:  16,
		PriceCents:     2500,
		SeatsTotal:     20,
		SeatsAvailable: 20,
		StartDate:      time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetCentersWithGovernorateFilter(t *testing.T) {
	centers := &stubCenterReader{centers: []model.Center{{
		ID: 1, Name: "Modern Tech Center", Governorate: "Muscat",
		Address: "Al Qurum", LicenseNumber: "LIC-OM-001",
	}}}
	courses := &stubCourseReader{courses: []model.Course{sampleCourse()}}

	e := echo.New()
	c, rec := browseContext(e, "/v1/centers?governorate=Muscat")
	h := &PublicHandler{Centers: centers, Courses: courses}
	if err := h.GetCenters(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if centers.lastGovernorate != "Muscat" {
		t.Fatalf("governorate filter = %q, want %q", centers.lastGovernorate, "Muscat")
	}
	var resp struct {
		Items []PublicCenter `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(resp.Items))
	}
	ctr := resp.Items[0]
	if ctr.Governorate != "Muscat" || ctr.LicenseNumber != "LIC-OM-001" {
		t.Fatalf("unexpected center payload %+v", ctr)
	}
	if len(ctr.Courses) != 1 {
		t.Fatalf("nested courses = %d, want 1", len(ctr.Courses))
	}
	crs := ctr.Courses[0]
	if crs.SeatsTotal != 20 || crs.SeatsAvailable != 20 {
		t.Fatalf("unexpected seat counts %+v", crs)
	}
	if crs.StartDate != "2025-11-01" || crs.EndDate != "2025-11-15" {
		t.Fatalf("dates = %q..%q, want 2025-11-01..2025-11-15", crs.StartDate, crs.EndDate)
	}
}

func TestGetCenterNotFound(t *testing.T) {
	e := echo.New()
	c, rec := browseContext(e, "/v1/centers/99")
	c.SetPath("/v1/centers/:id")
	c.SetParamNames("id")
	c.SetParamValues("99")

	h := &PublicHandler{Centers: &stubCenterReader{err: sql.ErrNoRows}, Courses: &stubCourseReader{}}
	if err := h.GetCenter(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetCenterInvalidID(t *testing.T) {
	e := echo.New()
	c, rec := browseContext(e, "/v1/centers/abc")
	c.SetPath("/v1/centers/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	h := &PublicHandler{Centers: &stubCenterReader{}, Courses: &stubCourseReader{}}
	if err := h.GetCenter(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetCourseSuccess(t *testing.T) {
	courses := &stubCourseReader{detail: &repository.CourseDetail{
		Course:     sampleCourse(),
		CenterName: "Modern Tech Center",
	}}

	e := echo.New()
	c, rec := browseContext(e, "/v1/courses/1")
	c.SetPath("/v1/courses/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := &PublicHandler{Centers: &stubCenterReader{}, Courses: courses}
	if err := h.GetCourse(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Item PublicCourseDetail `json:"item"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Item.CenterName != "Modern Tech Center" {
		t.Fatalf("center_name = %q, want %q", resp.Item.CenterName, "Modern Tech Center")
	}
	if resp.Item.Title != "Introduction to Programming" {
		t.Fatalf("title = %q, want %q", resp.Item.Title, "Introduction to Programming")
	}
}

func TestGetCourseNotFound(t *testing.T) {
	e := echo.New()
	c, rec := browseContext(e, "/v1/courses/99")
	c.SetPath("/v1/courses/:id")
	c.SetParamNames("id")
	c.SetParamValues("99")

	h := &PublicHandler{Centers: &stubCenterReader{}, Courses: &stubCourseReader{err: sql.ErrNoRows}}
	if err := h.GetCourse(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetCourseInvalidID(t *testing.T) {
	e := echo.New()
	c, rec := browseContext(e, "/v1/courses/0")
	c.SetPath("/v1/courses/:id")
	c.SetParamNames("id")
	c.SetParamValues("0")

	h := &PublicHandler{Centers: &stubCenterReader{}, Courses: &stubCourseReader{}}
	if err := h.GetCourse(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
