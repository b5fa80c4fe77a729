package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/gallery"
)

const galleryFileField = "file"

var errFileRequired = core.NewValidationError(nil, core.FieldError{Field: galleryFileField, Error: "file is required"})

type galleryApi struct {
	svc           *gallery.Service
	validate      *validator.Validate
	maxUploadSize int64
}

func registerGalleryAPI(
	g *echo.Group,
	jwt, admin echo.MiddlewareFunc,
	svc *gallery.Service,
	validate *validator.Validate,
	conf *core.Config,
) {
	api := galleryApi{svc: svc, validate: validate, maxUploadSize: conf.Server.MaxUploadSize}

	g.GET("/gallery", api.query)

	ag := g.Group("/admin/gallery", jwt, admin)
	ag.GET("", api.query)
	ag.POST("", api.create)
	ag.GET("/:id", api.retrieve)
	ag.PATCH("/:id", api.update)
	ag.DELETE("/:id", api.destroy)
}

func (api *galleryApi) query(ctx echo.Context) error {
	filter := &gallery.QueryFilter{Category: ctx.QueryParam("category")}
	filter.Clean()
	ordering := new(Ordering)
	ordering.Bind(ctx)

	items, err := api.svc.Query(ctx.Request().Context(), filter, ordering.Orderings)
	if err != nil {
		return errors.Wrap(err, "querying gallery")
	}
	return ctx.JSON(http.StatusOK, items)
}

// create expects a multipart form with `title`, `category` and the `file` to publish.
func (api *galleryApi) create(ctx echo.Context) error {
	var data gallery.NewItem
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewItem")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	up, done, err := formUpload(ctx, galleryFileField, api.maxUploadSize)
	if err != nil {
		return err
	}
	defer done()
	if up == nil {
		return errFileRequired
	}

	item, err := api.svc.Create(ctx.Request().Context(), data, *up)
	if err != nil {
		return errors.Wrap(err, "creating gallery item")
	}
	return ctx.JSON(http.StatusCreated, item)
}

func (api *galleryApi) retrieve(ctx echo.Context) error {
	item, err := api.svc.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting gallery item")
	}
	return ctx.JSON(http.StatusOK, item)
}

func (api *galleryApi) update(ctx echo.Context) error {
	var data gallery.UpdateItem
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateItem")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	item, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating gallery item")
	}
	return ctx.JSON(http.StatusOK, item)
}

func (api *galleryApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting gallery item")
	}
	return ctx.NoContent(http.StatusNoContent)
}
