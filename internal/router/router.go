package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/training-center-booking/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not belong to the versioned API.
// Currently it exposes only a health check, used by load balancers and
// monitoring systems to verify that the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the browse endpoints on the provided Echo
// instance.  All of them are unauthenticated reads; the optional cache
// middleware serves repeated catalogue requests from Redis.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1", cache)
	// Expose list of all centers, optionally filtered by ?governorate=
	g.GET("/centers", p.GetCenters)
	// Center detail with its courses
	g.GET("/centers/:id", p.GetCenter)
	// Course detail with the offering center's name
	g.GET("/courses/:id", p.GetCourse)
}

// RegisterBooking registers the booking entry point and the enrollment
// read path.  The rate limiter guards the write endpoint; the enrollment
// lookup feeds the certificate renderer and stays uncached so the code on
// the document always matches storage.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, q *handler.EnrollmentHandler, limiter echo.MiddlewareFunc) {
	e.POST("/v1/enrollments", b.CreateEnrollment, limiter)
	e.GET("/v1/enrollments/:id", q.GetEnrollment)
}
