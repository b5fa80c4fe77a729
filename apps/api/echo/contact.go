package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/contact"
)

type contactApi struct {
	svc      *contact.Service
	validate *validator.Validate
}

func registerContactAPI(g *echo.Group, jwt, admin echo.MiddlewareFunc, svc *contact.Service, validate *validator.Validate) {
	api := contactApi{svc: svc, validate: validate}

	g.POST("/contact", api.create)
	g.GET("/admin/messages", api.query, jwt, admin)
}

func (api *contactApi) create(ctx echo.Context) error {
	var data contact.NewMessage
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMessage")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	m, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating contact message")
	}
	return ctx.JSON(http.StatusCreated, m)
}

func (api *contactApi) query(ctx echo.Context) error {
	msgs, err := api.svc.Query(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying contact messages")
	}
	return ctx.JSON(http.StatusOK, msgs)
}
