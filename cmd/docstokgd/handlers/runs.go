package handlers

import (
	"net/http"

	apierr "github.com/docstokg/docstokg-web/pkg/api/types/errors"
	apiruns "github.com/docstokg/docstokg-web/pkg/api/types/runs"
	kdb "github.com/docstokg/docstokg-web/pkg/db"
	"github.com/labstack/echo/v4"
)

func GetRunProgressHandler(dbRun kdb.RunInterface, paramProject string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := caller(c)
		if err != nil {
			return err
		}
		project, err := projectName(c, paramProject)
		if err != nil {
			return err
		}

		run, err := dbRun.Progress(c.Request().Context(), id.UserId, project)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apiruns.ComposeProgress(run))
	}
}

func GetRunHistoryHandler(dbRun kdb.RunInterface, paramProject string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := caller(c)
		if err != nil {
			return err
		}
		project, err := projectName(c, paramProject)
		if err != nil {
			return err
		}

		runs, err := dbRun.History(c.Request().Context(), id.UserId, project)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apiruns.ComposeHistory(runs))
	}
}

func GetRunDocumentsHandler(dbRun kdb.RunInterface, paramProject string, paramRunId string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := caller(c)
		if err != nil {
			return err
		}
		project, err := projectName(c, paramProject)
		if err != nil {
			return err
		}
		runId, err := int64Param(c, paramRunId, "Invalid run ID")
		if err != nil {
			return err
		}

		docs, err := dbRun.Documents(c.Request().Context(), id.UserId, project, runId)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apiruns.ComposeDocuments(docs))
	}
}
