package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/instructor"
)

const instructorImageField = "image"

type instructorApi struct {
	svc           *instructor.Service
	validate      *validator.Validate
	maxUploadSize int64
}

func registerInstructorAPI(
	g *echo.Group,
	jwt, admin echo.MiddlewareFunc,
	svc *instructor.Service,
	validate *validator.Validate,
	conf *core.Config,
) {
	api := instructorApi{svc: svc, validate: validate, maxUploadSize: conf.Server.MaxUploadSize}

	g.GET("/instructors", api.query)

	ag := g.Group("/admin/instructors", jwt, admin)
	ag.GET("", api.query)
	ag.POST("", api.create)
	ag.GET("/:id", api.retrieve)
	ag.PATCH("/:id", api.update)
	ag.DELETE("/:id", api.destroy)
}

func (api *instructorApi) query(ctx echo.Context) error {
	ordering := new(Ordering)
	ordering.Bind(ctx)

	instructors, err := api.svc.Query(ctx.Request().Context(), ordering.Orderings)
	if err != nil {
		return errors.Wrap(err, "querying instructors")
	}
	return ctx.JSON(http.StatusOK, instructors)
}

// create accepts a multipart form with an `image` file, or a JSON body referencing an already stored `image_key`.
func (api *instructorApi) create(ctx echo.Context) error {
	var data instructor.NewInstructor
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewInstructor")
	}
	if isMultipart(ctx) {
		data.Certifications = instructor.ParseCertifications(ctx.FormValue("certifications"))
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	up, done, err := formUpload(ctx, instructorImageField, api.maxUploadSize)
	if err != nil {
		return err
	}
	defer done()

	ins, err := api.svc.Create(ctx.Request().Context(), data, up)
	if err != nil {
		return errors.Wrap(err, "creating instructor")
	}
	return ctx.JSON(http.StatusCreated, ins)
}

func (api *instructorApi) retrieve(ctx echo.Context) error {
	ins, err := api.svc.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting instructor")
	}
	return ctx.JSON(http.StatusOK, ins)
}

// update accepts a JSON body, or a multipart form that may carry a new `image`.
func (api *instructorApi) update(ctx echo.Context) error {
	var data instructor.UpdateInstructor
	if isMultipart(ctx) {
		data.Name = formString(ctx, "name")
		data.Role = formString(ctx, "role")
		data.Bio = formString(ctx, "bio")
		if certs := formString(ctx, "certifications"); certs != nil {
			parsed := instructor.ParseCertifications(*certs)
			data.Certifications = &parsed
		}
	} else if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateInstructor")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	up, done, err := formUpload(ctx, instructorImageField, api.maxUploadSize)
	if err != nil {
		return err
	}
	defer done()

	ins, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data, up)
	if err != nil {
		return errors.Wrap(err, "updating instructor")
	}
	return ctx.JSON(http.StatusOK, ins)
}

func (api *instructorApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting instructor")
	}
	return ctx.NoContent(http.StatusNoContent)
}
