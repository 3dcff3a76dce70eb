package echoutil

import (
	"context"

	apierr "github.com/docstokg/docstokg-web/pkg/api/types/errors"
	xe "github.com/docstokg/docstokg-web/pkg/errors"
	"github.com/labstack/echo/v4"
)

type Ensurer interface {
	Ensure(ctx context.Context) error
}

// SchemaGuard makes handlers run after the schema is ensured.
//
// When ensuring fails, the request fails with 500 and the next request tries again.
func SchemaGuard(schema Ensurer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := schema.Ensure(c.Request().Context()); err != nil {
				return apierr.InternalServerError(xe.Wrap(err))
			}
			return next(c)
		}
	}
}
