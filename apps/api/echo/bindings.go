package echoapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

var orderingParam = "ordering"

// Ordering binds `?ordering=-created_at,title`; unknown fields are dropped by the services.
type Ordering struct {
	Orderings []core.DBOrdering
}

func (ord *Ordering) Bind(ctx echo.Context) {
	val := ctx.QueryParam(orderingParam)
	if val == "" {
		return
	}

	for _, field := range strings.Split(val, ",") {
		field = strings.TrimSpace(field)
		descending := strings.HasPrefix(field, "-")
		if descending {
			field = field[1:] // drop "-"
		}
		if field == "" {
			continue
		}
		ord.Orderings = append(ord.Orderings, core.DBOrdering{Field: field, Ascending: !descending})
	}
}
