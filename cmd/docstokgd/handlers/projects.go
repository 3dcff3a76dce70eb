package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apierr "github.com/docstokg/docstokg-web/pkg/api/types/errors"
	apiprojects "github.com/docstokg/docstokg-web/pkg/api/types/projects"
	apisettings "github.com/docstokg/docstokg-web/pkg/api/types/settings"
	apiusers "github.com/docstokg/docstokg-web/pkg/api/types/users"
	kdb "github.com/docstokg/docstokg-web/pkg/db"
	"github.com/docstokg/docstokg-web/pkg/domain"
	"github.com/labstack/echo/v4"
)

// ListProjectsHandler responds projects of the caller.
//
// Query parameters "status" and "q" (a part of names) narrow them down.
func ListProjectsHandler(dbProject kdb.ProjectInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := caller(c)
		if err != nil {
			return err
		}

		filter := domain.ProjectFilter{Name: c.QueryParam("q")}
		if s := c.QueryParam("status"); s != "" {
			status, err := domain.AsProjectStatus(s)
			if err != nil {
				return apierr.BadRequest(
					"Invalid status",
					apierr.WithAdvice("status should be one of uploading, processing, completed or error"),
					apierr.WithError(err),
				)
			}
			filter.Status = status
		}

		projects, err := dbProject.List(c.Request().Context(), id.UserId, filter)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apiprojects.ComposeList(projects))
	}
}

func CreateProjectHandler(dbProject kdb.ProjectInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := caller(c)
		if err != nil {
			return err
		}

		req := apiprojects.Create{}
		decoder := json.NewDecoder(c.Request().Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			return apierr.BadRequest(
				"Invalid payload", apierr.WithAdvice(err.Error()), apierr.WithError(err),
			)
		}
		if err := req.Validate(); err != nil {
			return apierr.BadRequest(
				"Invalid project name", apierr.WithAdvice(err.Error()), apierr.WithError(err),
			)
		}

		created, err := dbProject.Create(c.Request().Context(), req.ToDomain(id.UserId))
		if errors.Is(err, kdb.ErrConflict) {
			return apierr.Conflict("Project already exists", apierr.WithError(err))
		} else if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusCreated, apiprojects.ComposeProject(created))
	}
}

func DeleteProjectHandler(dbProject kdb.ProjectInterface, paramProject string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := caller(c)
		if err != nil {
			return err
		}
		project, err := projectName(c, paramProject)
		if err != nil {
			return err
		}

		err = dbProject.Delete(c.Request().Context(), id.UserId, project)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound()
		} else if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apiusers.Success{Success: true})
	}
}

// PutFavoriteHandler marks (favorite = true) or unmarks the project as favorite.
func PutFavoriteHandler(dbProject kdb.ProjectInterface, paramProject string, favorite bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := caller(c)
		if err != nil {
			return err
		}
		project, err := projectName(c, paramProject)
		if err != nil {
			return err
		}

		err = dbProject.SetFavorite(c.Request().Context(), id.UserId, project, favorite)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound()
		} else if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apiusers.Success{Success: true})
	}
}

func GetSettingHandler(dbSetting kdb.SettingInterface, paramProject string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := caller(c)
		if err != nil {
			return err
		}
		project, err := projectName(c, paramProject)
		if err != nil {
			return err
		}

		s, err := dbSetting.Get(c.Request().Context(), id.UserId, project)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound()
		} else if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apisettings.ComposeSetting(s))
	}
}

// PutSettingHandler creates or updates the setting of the project, and responds the stored one.
func PutSettingHandler(dbSetting kdb.SettingInterface, paramProject string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := caller(c)
		if err != nil {
			return err
		}
		project, err := projectName(c, paramProject)
		if err != nil {
			return err
		}

		change := apisettings.Change{}
		decoder := json.NewDecoder(c.Request().Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&change); err != nil {
			return apierr.BadRequest(
				"Invalid payload", apierr.WithAdvice(err.Error()), apierr.WithError(err),
			)
		}
		if err := change.Validate(); err != nil {
			return apierr.BadRequest(
				"Invalid payload", apierr.WithAdvice(err.Error()), apierr.WithError(err),
			)
		}

		ctx := c.Request().Context()
		err = dbSetting.Upsert(ctx, change.ToDomain(id.UserId, project))
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound()
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		s, err := dbSetting.Get(ctx, id.UserId, project)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apisettings.ComposeSetting(s))
	}
}
