package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core/profile"
)

// adminMiddleware lets through callers whose Profile, read from the store on every request, is an admin.
// It must run after the JWT middleware.
func adminMiddleware(svc *profile.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return err
			}
			p, err := svc.GetByID(ctx.Request().Context(), claims.Subject)
			if err != nil {
				if core.IsNotFound(err) {
					return errForbidden
				}
				return errors.Wrap(err, "finding profile by ID")
			}
			if !p.IsAdmin() {
				return errForbidden
			}
			ctx.Set(contextProfileKey, p)
			return next(ctx)
		}
	}
}
