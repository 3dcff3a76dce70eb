package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	apierr "github.com/docstokg/docstokg-web/pkg/api/types/errors"
	apiusers "github.com/docstokg/docstokg-web/pkg/api/types/users"
	"github.com/docstokg/docstokg-web/pkg/auth"
	kdb "github.com/docstokg/docstokg-web/pkg/db"
	"github.com/docstokg/docstokg-web/pkg/domain"
	"github.com/labstack/echo/v4"
)

const minPasswordLength = 8

func RegisterHandler(dbUser kdb.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := apiusers.Register{}
		decoder := json.NewDecoder(c.Request().Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			return apierr.BadRequest(
				"Invalid payload", apierr.WithAdvice(err.Error()), apierr.WithError(err),
			)
		}

		email := strings.TrimSpace(req.Email)
		if !strings.Contains(email, "@") {
			return apierr.BadRequest("Invalid email")
		}
		if len(req.Password) < minPasswordLength {
			return apierr.BadRequest(
				"Invalid password",
				apierr.WithAdvice("password should have 8 characters or more"),
			)
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		userId, err := dbUser.Register(c.Request().Context(), domain.NewUser{
			Email:        email,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			PasswordHash: hash,
		})
		if errors.Is(err, kdb.ErrConflict) {
			return apierr.Conflict("Email is already registered", apierr.WithError(err))
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusCreated, apiusers.Registered{UserId: userId})
	}
}

// LoginHandler verifies credentials, and issues a token as a cookie and in the body.
//
// Blocked users are rejected with 403 only after their password is verified.
func LoginHandler(dbUser kdb.UserInterface, issuer *auth.Issuer, cookieSecure bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := apiusers.Login{}
		if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
			return apierr.BadRequest("Invalid payload", apierr.WithError(err))
		}

		user, err := dbUser.FindByEmail(c.Request().Context(), strings.TrimSpace(req.Email))
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.Unauthorized(apierr.WithAdvice("email or password is wrong"))
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		if err := auth.ComparePassword(user.PasswordHash, req.Password); errors.Is(err, auth.ErrPasswordMismatch) {
			return apierr.Unauthorized(apierr.WithAdvice("email or password is wrong"))
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		if user.IsBlocked {
			return apierr.Forbidden(apierr.WithAdvice("the account is blocked"))
		}

		token, err := issuer.Issue(auth.Identity{UserId: user.Id, Role: user.Role})
		if err != nil {
			return apierr.InternalServerError(err)
		}

		c.SetCookie(&http.Cookie{
			Name:     auth.CookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(issuer.TTL().Seconds()),
			HttpOnly: true,
			Secure:   cookieSecure,
			SameSite: http.SameSiteLaxMode,
		})
		return c.JSON(http.StatusOK, apiusers.LoggedIn{
			Token: token,
			User:  apiusers.ComposeUser(user),
		})
	}
}

// LogoutHandler expires the token cookie.
//
// Tokens are stateless. A token copied elsewhere is valid until it expires.
func LogoutHandler(cookieSecure bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.SetCookie(&http.Cookie{
			Name:     auth.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   cookieSecure,
			SameSite: http.SameSiteLaxMode,
		})
		return c.NoContent(http.StatusNoContent)
	}
}

func MeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := caller(c)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, apiusers.Me{UserId: id.UserId, Role: string(id.Role)})
	}
}
