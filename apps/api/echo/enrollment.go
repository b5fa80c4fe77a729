package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/enrollment"
)

type enrollmentApi struct {
	svc      *enrollment.Service
	logger   core.Logger
	validate *validator.Validate
}

func registerEnrollmentAPI(
	v1, legacy *echo.Group,
	jwt, admin echo.MiddlewareFunc,
	svc *enrollment.Service,
	logger core.Logger,
	validate *validator.Validate,
) {
	api := enrollmentApi{svc: svc, logger: logger, validate: validate}

	// public endpoints
	v1.POST("/enrollments", api.submit)
	legacy.POST("/send-email", api.notifyAdmin)

	// admin endpoints
	legacy.POST("/enrollments/approve", api.approve, jwt, admin)
	ag := v1.Group("/admin/enrollments", jwt, admin)
	ag.GET("", api.query)
	ag.GET("/:id", api.retrieve)
	ag.POST("/:id/approve", api.approveByParam)
}

func (api *enrollmentApi) submit(ctx echo.Context) error {
	var data enrollment.NewEnrollment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEnrollment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	e, err := api.svc.Submit(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "submitting enrollment")
	}
	return ctx.JSON(http.StatusCreated, SubmitResponse{Success: true, Enrollment: e})
}

func (api *enrollmentApi) notifyAdmin(ctx echo.Context) error {
	var data enrollment.Notice
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Notice")
	}
	data.Clean()

	if err := api.svc.NotifyAdmin(ctx.Request().Context(), data); err != nil {
		api.logger.Error("sending enrollment notice", err)
		return errSendEmail
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (api *enrollmentApi) approve(ctx echo.Context) error {
	var data ApproveRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ApproveRequest")
	}
	return api.doApprove(ctx, data.EnrollmentID)
}

func (api *enrollmentApi) approveByParam(ctx echo.Context) error {
	return api.doApprove(ctx, ctx.Param("id"))
}

func (api *enrollmentApi) doApprove(ctx echo.Context, id string) error {
	res, err := api.svc.Approve(ctx.Request().Context(), id)
	if err != nil {
		if errors.Cause(err) == enrollment.ErrStatusUpdate {
			return errStatusUpdate
		}
		return errors.Wrap(err, "approving enrollment")
	}
	return ctx.JSON(http.StatusOK, ApproveResponse{Message: res.Message(), Outcome: res.Outcome})
}

func (api *enrollmentApi) query(ctx echo.Context) error {
	filter := &enrollment.QueryFilter{Status: ctx.QueryParam("status")}
	if err := filter.Validate(api.validate); err != nil {
		return err
	}
	ordering := new(Ordering)
	ordering.Bind(ctx)

	es, err := api.svc.Query(ctx.Request().Context(), filter, ordering.Orderings)
	if err != nil {
		return errors.Wrap(err, "querying enrollments")
	}
	return ctx.JSON(http.StatusOK, es)
}

func (api *enrollmentApi) retrieve(ctx echo.Context) error {
	e, err := api.svc.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting enrollment")
	}
	return ctx.JSON(http.StatusOK, e)
}

type (
	ApproveRequest struct {
		EnrollmentID string `json:"enrollmentId"`
	}

	ApproveResponse struct {
		Message string `json:"message"`
		Outcome string `json:"outcome"`
	}

	SubmitResponse struct {
		Success    bool                  `json:"success"`
		Enrollment enrollment.Enrollment `json:"enrollment"`
	}

	SuccessResponse struct {
		Success bool   `json:"success"`
		Message string `json:"message,omitempty"`
	}
)
