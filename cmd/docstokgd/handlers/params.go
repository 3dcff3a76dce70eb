package handlers

import (
	"net/url"
	"strconv"

	apierr "github.com/docstokg/docstokg-web/pkg/api/types/errors"
	"github.com/docstokg/docstokg-web/pkg/auth"
	"github.com/labstack/echo/v4"
)

// caller returns the identity of the request.
//
// Routes are guarded by auth.RequireUser or auth.RequireAdmin,
// so this fails only when a route is misconfigured.
func caller(c echo.Context) (auth.Identity, error) {
	id, ok := auth.IdentityOf(c)
	if !ok {
		return auth.Identity{}, apierr.Unauthorized()
	}
	return id, nil
}

// projectName reads a percent-decoded project name from the path parameter.
//
// echo routes with URL.RawPath when the request has it, and then parameters are left escaped.
func projectName(c echo.Context, param string) (string, error) {
	name := c.Param(param)
	if c.Request().URL.RawPath != "" {
		n, err := url.PathUnescape(name)
		if err != nil {
			return "", apierr.BadRequest("Invalid project name", apierr.WithError(err))
		}
		name = n
	}
	if name == "" {
		return "", apierr.BadRequest("Invalid project name")
	}
	return name, nil
}

func int64Param(c echo.Context, param string, reason string) (int64, error) {
	v, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		return 0, apierr.BadRequest(reason, apierr.WithError(err))
	}
	return v, nil
}
