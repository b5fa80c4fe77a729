package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/testimonial"
)

type testimonialApi struct {
	svc      *testimonial.Service
	validate *validator.Validate
}

func registerTestimonialAPI(g *echo.Group, jwt, admin echo.MiddlewareFunc, svc *testimonial.Service, validate *validator.Validate) {
	api := testimonialApi{svc: svc, validate: validate}

	g.GET("/testimonials", api.queryPublished)

	ag := g.Group("/admin/testimonials", jwt, admin)
	ag.GET("", api.query)
	ag.POST("", api.create)
	ag.GET("/:id", api.retrieve)
	ag.PATCH("/:id", api.update)
	ag.DELETE("/:id", api.destroy)
}

func (api *testimonialApi) queryPublished(ctx echo.Context) error {
	ordering := new(Ordering)
	ordering.Bind(ctx)

	ts, err := api.svc.Query(ctx.Request().Context(), &testimonial.QueryFilter{PublishedOnly: true}, ordering.Orderings)
	if err != nil {
		return errors.Wrap(err, "querying published testimonials")
	}
	return ctx.JSON(http.StatusOK, ts)
}

func (api *testimonialApi) query(ctx echo.Context) error {
	ordering := new(Ordering)
	ordering.Bind(ctx)

	ts, err := api.svc.Query(ctx.Request().Context(), nil, ordering.Orderings)
	if err != nil {
		return errors.Wrap(err, "querying testimonials")
	}
	return ctx.JSON(http.StatusOK, ts)
}

func (api *testimonialApi) create(ctx echo.Context) error {
	var data testimonial.NewTestimonial
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTestimonial")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	t, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating testimonial")
	}
	return ctx.JSON(http.StatusCreated, t)
}

func (api *testimonialApi) retrieve(ctx echo.Context) error {
	t, err := api.svc.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting testimonial")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *testimonialApi) update(ctx echo.Context) error {
	var data testimonial.UpdateTestimonial
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateTestimonial")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	t, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating testimonial")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *testimonialApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting testimonial")
	}
	return ctx.NoContent(http.StatusNoContent)
}
