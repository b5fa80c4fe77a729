package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/newsletter"
)

const subscribedMessage = "Subscribed successfully"

type newsletterApi struct {
	svc      *newsletter.Service
	logger   core.Logger
	validate *validator.Validate
}

func registerNewsletterAPI(g *echo.Group, svc *newsletter.Service, logger core.Logger, validate *validator.Validate) {
	api := newsletterApi{svc: svc, logger: logger, validate: validate}
	g.POST("/subscribe", api.subscribe)
}

func (api *newsletterApi) subscribe(ctx echo.Context) error {
	var data newsletter.Subscription
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Subscription")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.svc.Subscribe(ctx.Request().Context(), data); err != nil {
		api.logger.Error("subscribing to newsletter", err)
		return errSendEmail
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true, Message: subscribedMessage})
}
