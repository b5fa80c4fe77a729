package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/contact"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/course"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/enrollment"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/testimonial"
)

type (
	dashboardApi struct {
		enrollmentSvc  *enrollment.Service
		courseSvc      *course.Service
		contactSvc     *contact.Service
		testimonialSvc *testimonial.Service
	}

	DashboardResponse struct {
		Enrollments        int `json:"enrollments"`
		PendingEnrollments int `json:"pending_enrollments"`
		Courses            int `json:"courses"`
		Messages           int `json:"messages"`
		Testimonials       int `json:"testimonials"`
	}
)

func registerDashboardAPI(g *echo.Group, jwt, admin echo.MiddlewareFunc, deps ServerDeps) {
	api := dashboardApi{
		enrollmentSvc:  deps.EnrollmentSvc,
		courseSvc:      deps.CourseSvc,
		contactSvc:     deps.ContactSvc,
		testimonialSvc: deps.TestimonialSvc,
	}
	g.GET("/admin/dashboard", api.counts, jwt, admin)
}

func (api *dashboardApi) counts(ctx echo.Context) error {
	c := ctx.Request().Context()
	var (
		res DashboardResponse
		err error
	)
	if res.Enrollments, err = api.enrollmentSvc.Count(c, nil); err != nil {
		return errors.Wrap(err, "counting enrollments")
	}
	if res.PendingEnrollments, err = api.enrollmentSvc.Count(c, &enrollment.QueryFilter{Status: enrollment.StatusPending}); err != nil {
		return errors.Wrap(err, "counting pending enrollments")
	}
	if res.Courses, err = api.courseSvc.Count(c); err != nil {
		return errors.Wrap(err, "counting courses")
	}
	if res.Messages, err = api.contactSvc.Count(c); err != nil {
		return errors.Wrap(err, "counting contact messages")
	}
	if res.Testimonials, err = api.testimonialSvc.Count(c); err != nil {
		return errors.Wrap(err, "counting testimonials")
	}
	return ctx.JSON(http.StatusOK, res)
}
