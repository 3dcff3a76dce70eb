package auth

import (
	"strings"

	apierr "github.com/docstokg/docstokg-web/pkg/api/types/errors"
	"github.com/labstack/echo/v4"
)

// CookieName is the name of the cookie carrying tokens.
const CookieName = "token"

const identityKey = "docstokg/identity"

// TokenOf extracts a token from the request.
//
// The cookie is preferred to "Authorization: Bearer ..." header.
func TokenOf(c echo.Context) (string, bool) {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	scheme, token, ok := strings.Cut(c.Request().Header.Get(echo.HeaderAuthorization), " ")
	if ok && strings.EqualFold(scheme, "Bearer") && token != "" {
		return strings.TrimSpace(token), true
	}
	return "", false
}

// Middleware verifies the token of requests and stores the identity in echo.Context.
//
// Requests without valid tokens pass through as anonymous.
func Middleware(issuer *Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := TokenOf(c)
			if !ok {
				return next(c)
			}
			id, err := issuer.Verify(token)
			if err != nil {
				c.Logger().Debugf("token is ignored: %v", err)
				return next(c)
			}
			SetIdentity(c, id)
			return next(c)
		}
	}
}

func SetIdentity(c echo.Context, id Identity) {
	c.Set(identityKey, id)
}

// IdentityOf returns the caller. ok is false for anonymous callers.
func IdentityOf(c echo.Context) (id Identity, ok bool) {
	id, ok = c.Get(identityKey).(Identity)
	return
}

// RequireUser rejects anonymous callers with 401.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := IdentityOf(c); !ok {
			return apierr.Unauthorized(apierr.WithAdvice("log in first"))
		}
		return next(c)
	}
}

// RequireAdmin rejects callers other than admins with 403. Anonymous callers are not admins.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if id, ok := IdentityOf(c); !ok || !id.IsAdmin() {
			return apierr.Forbidden()
		}
		return next(c)
	}
}
