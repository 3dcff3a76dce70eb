package echoutil

import (
	"errors"
	"fmt"
	"net/http"

	apierr "github.com/docstokg/docstokg-web/pkg/api/types/errors"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as JSON `{"message": {"reason": ...}}`.
//
// Errors which are not *echo.HTTPError are 500, and their details are not sent.
// Causes of 5xx errors are logged.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := apierr.ErrorMessage{Reason: "Internal server error"}

	if herr := new(echo.HTTPError); errors.As(err, &herr) {
		code = herr.Code
		switch m := herr.Message.(type) {
		case apierr.ErrorMessage:
			msg = apierr.ErrorMessage{Reason: m.Reason, Advice: m.Advice}
		case string:
			msg = apierr.ErrorMessage{Reason: m}
		default:
			msg = apierr.ErrorMessage{Reason: fmt.Sprint(m)}
		}
		if herr.Internal != nil {
			err = herr.Internal
		}
	}

	if http.StatusInternalServerError <= code {
		c.Logger().Errorf("%s %s -> %d: %+v", c.Request().Method, c.Request().URL, code, err)
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, apierr.ErrorResponse{Message: msg})
	}
	if werr != nil {
		c.Logger().Error(werr)
	}
}
