package handlers

import (
	"encoding/json"
	"net/http"

	apierr "github.com/docstokg/docstokg-web/pkg/api/types/errors"
	apiusers "github.com/docstokg/docstokg-web/pkg/api/types/users"
	kdb "github.com/docstokg/docstokg-web/pkg/db"
	"github.com/labstack/echo/v4"
)

func ListUsersHandler(dbUser kdb.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := dbUser.List(c.Request().Context())
		if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apiusers.ComposeList(users))
	}
}

// SetUserBlockedHandler updates "is_blocked" of the user.
//
// The body should be `{"is_blocked": <bool>}`. Other types are rejected.
func SetUserBlockedHandler(dbUser kdb.UserInterface, paramUserId string) echo.HandlerFunc {
	return func(c echo.Context) error {
		userId, err := int64Param(c, paramUserId, "Invalid user ID")
		if err != nil {
			return err
		}

		req := apiusers.SetBlocked{}
		if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
			return apierr.BadRequest(
				"Invalid payload",
				apierr.WithAdvice(`"is_blocked" should be a boolean`),
				apierr.WithError(err),
			)
		}

		if err := dbUser.SetBlocked(c.Request().Context(), userId, req.IsBlocked); err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apiusers.Success{Success: true})
	}
}

// DeleteUserHandler removes the user.
//
// Projects, documents and settings of the user are removed by the database.
func DeleteUserHandler(dbUser kdb.UserInterface, paramUserId string) echo.HandlerFunc {
	return func(c echo.Context) error {
		userId, err := int64Param(c, paramUserId, "Invalid user ID")
		if err != nil {
			return err
		}

		if err := dbUser.Delete(c.Request().Context(), userId); err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apiusers.Success{Success: true})
	}
}
