package echoutil

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/docstokg/docstokg-web/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// LogHandlerFunc logs each request when it is finished, with its route and caller.
//
// Server errors are logged in ERROR level, others in INFO. Request arrivals are logged in DEBUG.
func LogHandlerFunc(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		begin := time.Now()
		c.Logger().Debugf("< %s %s", req.Method, req.URL)

		err := next(c)

		// identity is known after the credential gate in the chain.
		who := "anonymous"
		if id, ok := auth.IdentityOf(c); ok {
			who = fmt.Sprintf("user=%d(%s)", id.UserId, id.Role)
		}
		status := c.Response().Status
		if herr := new(echo.HTTPError); errors.As(err, &herr) {
			// not committed yet. the error handler writes it later.
			status = herr.Code
		} else if err != nil {
			status = http.StatusInternalServerError
		}

		logf := c.Logger().Infof
		if http.StatusInternalServerError <= status {
			logf = c.Logger().Errorf
		}
		logf(
			"> %s %s (route %s) by %s: status = %d in %v / error = %v",
			req.Method, req.URL, c.Path(), who, status, time.Since(begin), err,
		)
		return err
	}
}

// SetLevel sets log level of e by name.
//
// Unknown names fall back to "warn".
func SetLevel(e *echo.Echo, loglevel string) {
	switch strings.ToLower(loglevel) {
	case "debug":
		e.Logger.SetLevel(log.DEBUG)
	case "info":
		e.Logger.SetLevel(log.INFO)
	case "warn", "":
		e.Logger.SetLevel(log.WARN)
	case "error":
		e.Logger.SetLevel(log.ERROR)
	case "off":
		e.Logger.SetLevel(log.OFF)
	default:
		e.Logger.SetLevel(log.WARN)
		e.Logger.Warnf("unknown loglevel: %s . fall-backed to warn", loglevel)
	}
}
