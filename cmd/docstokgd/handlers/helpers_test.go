package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	apierr "github.com/docstokg/docstokg-web/pkg/api/types/errors"
	"github.com/labstack/echo/v4"
)

// assertHTTPError checks err is *echo.HTTPError with the code and the reason.
func assertHTTPError(t *testing.T, err error, code int, reason string) {
	t.Helper()
	herr := new(echo.HTTPError)
	if !errors.As(err, &herr) {
		t.Fatalf("error is not HTTPError: %v", err)
	}
	if herr.Code != code {
		t.Errorf("status code: (actual, expected) = (%d, %d)", herr.Code, code)
	}
	msg, ok := herr.Message.(apierr.ErrorMessage)
	if !ok {
		t.Fatalf("message is not ErrorMessage: %#v", herr.Message)
	}
	if reason != "" && msg.Reason != reason {
		t.Errorf("reason: (actual, expected) = (%s, %s)", msg.Reason, reason)
	}
}

// assertJSON checks the response has the code and the body equivalent to expected.
func assertJSON(t *testing.T, resp *httptest.ResponseRecorder, code int, expected string) {
	t.Helper()
	if resp.Code != code {
		t.Errorf("status code: (actual, expected) = (%d, %d)", resp.Code, code)
	}

	var a, e any
	if err := json.Unmarshal(resp.Body.Bytes(), &a); err != nil {
		t.Fatalf("response is not JSON: %s", resp.Body.String())
	}
	if err := json.Unmarshal([]byte(expected), &e); err != nil {
		t.Fatalf("expectation is not JSON: %s", expected)
	}
	ab, _ := json.Marshal(a)
	eb, _ := json.Marshal(e)
	if string(ab) != string(eb) {
		t.Errorf("unmatch body:\n===actual===\n%s\n===expected===\n%s", ab, eb)
	}
}
