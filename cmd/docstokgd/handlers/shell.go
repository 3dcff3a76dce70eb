package handlers

import (
	"net/http"

	"github.com/docstokg/docstokg-web/pkg/ui/shell"
	"github.com/labstack/echo/v4"
)

type ShellResponse struct {
	Theme   shell.ThemeName       `json:"theme"`
	Classes map[shell.Slot]string `json:"classes"`
	Sidebar []shell.Entry         `json:"sidebar"`
}

// GetShellHandler responds the dashboard frame for "?theme=...&path=...".
func GetShellHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := caller(c)
		if err != nil {
			return err
		}

		theme, classes := shell.Theme(c.QueryParam("theme"))
		return c.JSON(http.StatusOK, ShellResponse{
			Theme:   theme,
			Classes: classes,
			Sidebar: shell.Sidebar(c.QueryParam("path"), id.IsAdmin()),
		})
	}
}
