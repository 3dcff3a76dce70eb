package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/docstokg/docstokg-web/cmd/docstokgd/handlers"
	httptestutil "github.com/docstokg/docstokg-web/internal/testutils/http"
	apiusers "github.com/docstokg/docstokg-web/pkg/api/types/users"
	"github.com/docstokg/docstokg-web/pkg/auth"
	"github.com/docstokg/docstokg-web/pkg/db/mocks"
	"github.com/docstokg/docstokg-web/pkg/domain"
	kerr "github.com/docstokg/docstokg-web/pkg/domain/errors"
	"github.com/docstokg/docstokg-web/pkg/utils/try"
	"github.com/labstack/echo/v4"
)

func TestRegisterHandler(t *testing.T) {
	t.Run("it registers a user with hashed password", func(t *testing.T) {
		dbUser := mocks.NewUserInterface()
		dbUser.Impl.Register = func(ctx context.Context, user domain.NewUser) (int64, error) {
			return 43, nil
		}

		e := echo.New()
		body, ctype := httptestutil.JSON(
			`{"email":" ada@example.com ","password":"correct horse","firstName":"Ada","lastName":"L"}`,
		)
		c, resp := httptestutil.Post(e, "/api/auth/register", body, ctype)

		if err := handlers.RegisterHandler(dbUser)(c); err != nil {
			t.Fatal(err)
		}
		assertJSON(t, resp, http.StatusCreated, `{"userId":43}`)

		if dbUser.Calls.Register.Times() != 1 {
			t.Fatalf("Register is called %d times", dbUser.Calls.Register.Times())
		}
		actual := dbUser.Calls.Register[0]
		if actual.Email != "ada@example.com" || actual.FirstName != "Ada" || actual.LastName != "L" {
			t.Errorf("unexpected user: %+v", actual)
		}
		if err := auth.ComparePassword(actual.PasswordHash, "correct horse"); err != nil {
			t.Errorf("password is not hashed well: %v", err)
		}
	})

	t.Run("duplicated email is 409", func(t *testing.T) {
		dbUser := mocks.NewUserInterface()
		dbUser.Impl.Register = func(ctx context.Context, user domain.NewUser) (int64, error) {
			return 0, fmt.Errorf("%w: email", kerr.ErrConflict)
		}

		e := echo.New()
		body, ctype := httptestutil.JSON(`{"email":"ada@example.com","password":"correct horse"}`)
		c, _ := httptestutil.Post(e, "/api/auth/register", body, ctype)

		err := handlers.RegisterHandler(dbUser)(c)
		assertHTTPError(t, err, http.StatusConflict, "Email is already registered")
	})

	for name, testcase := range map[string]struct {
		when string
		then string
	}{
		"broken json":     {when: `{"email":`, then: "Invalid payload"},
		"unknown field":   {when: `{"email":"ada@example.com","password":"correct horse","role":"admin"}`, then: "Invalid payload"},
		"no email":        {when: `{"password":"correct horse"}`, then: "Invalid email"},
		"short password":  {when: `{"email":"ada@example.com","password":"short"}`, then: "Invalid password"},
		"email is number": {when: `{"email":1,"password":"correct horse"}`, then: "Invalid payload"},
	} {
		t.Run(name+" is 400", func(t *testing.T) {
			dbUser := mocks.NewUserInterface()

			e := echo.New()
			body, ctype := httptestutil.JSON(testcase.when)
			c, _ := httptestutil.Post(e, "/api/auth/register", body, ctype)

			err := handlers.RegisterHandler(dbUser)(c)
			assertHTTPError(t, err, http.StatusBadRequest, testcase.then)
			if dbUser.Calls.Register.Times() != 0 {
				t.Error("store is touched")
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	issuer := try.To(auth.NewIssuer([]byte(strings.Repeat("k", auth.MinSecretLength)), time.Hour)).OrFatal(t)
	hash := try.To(auth.HashPassword("correct horse")).OrFatal(t)

	users := map[string]domain.User{
		"ada@example.com": {
			Id: 42, Email: "ada@example.com", Role: domain.RoleUser, PasswordHash: hash,
		},
		"blocked@example.com": {
			Id: 44, Email: "blocked@example.com", Role: domain.RoleUser, IsBlocked: true, PasswordHash: hash,
		},
	}
	findByEmail := func(ctx context.Context, email string) (domain.User, error) {
		u, ok := users[email]
		if !ok {
			return domain.User{}, kerr.ErrMissing
		}
		return u, nil
	}

	t.Run("it issues a token", func(t *testing.T) {
		dbUser := mocks.NewUserInterface()
		dbUser.Impl.FindByEmail = findByEmail

		e := echo.New()
		body, ctype := httptestutil.JSON(`{"email":"ada@example.com","password":"correct horse"}`)
		c, resp := httptestutil.Post(e, "/api/auth/login", body, ctype)

		if err := handlers.LoginHandler(dbUser, issuer, true)(c); err != nil {
			t.Fatal(err)
		}
		if resp.Code != http.StatusOK {
			t.Fatalf("status code = %d", resp.Code)
		}

		actual := apiusers.LoggedIn{}
		if err := json.Unmarshal(resp.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		if actual.User.UserId != 42 {
			t.Errorf("unexpected user: %+v", actual.User)
		}
		id, err := issuer.Verify(actual.Token)
		if err != nil {
			t.Fatal(err)
		}
		if id != (auth.Identity{UserId: 42, Role: domain.RoleUser}) {
			t.Errorf("unexpected identity: %+v", id)
		}

		cookies := resp.Result().Cookies()
		if len(cookies) != 1 {
			t.Fatalf("unexpected cookies: %+v", cookies)
		}
		cookie := cookies[0]
		if cookie.Name != auth.CookieName || cookie.Value != actual.Token {
			t.Errorf("unexpected cookie: %+v", cookie)
		}
		if !cookie.HttpOnly || !cookie.Secure || cookie.MaxAge != 3600 {
			t.Errorf("unexpected cookie attributes: %+v", cookie)
		}
	})

	for name, testcase := range map[string]struct {
		when string
		then int
	}{
		"unknown email":  {when: `{"email":"nobody@example.com","password":"correct horse"}`, then: http.StatusUnauthorized},
		"wrong password": {when: `{"email":"ada@example.com","password":"battery staple"}`, then: http.StatusUnauthorized},
		"blocked user":   {when: `{"email":"blocked@example.com","password":"correct horse"}`, then: http.StatusForbidden},
		"blocked user with wrong password": {
			when: `{"email":"blocked@example.com","password":"battery staple"}`, then: http.StatusUnauthorized,
		},
		"broken json": {when: `{`, then: http.StatusBadRequest},
	} {
		t.Run(name, func(t *testing.T) {
			dbUser := mocks.NewUserInterface()
			dbUser.Impl.FindByEmail = findByEmail

			e := echo.New()
			body, ctype := httptestutil.JSON(testcase.when)
			c, resp := httptestutil.Post(e, "/api/auth/login", body, ctype)

			err := handlers.LoginHandler(dbUser, issuer, false)(c)
			assertHTTPError(t, err, testcase.then, "")
			if len(resp.Result().Cookies()) != 0 {
				t.Errorf("cookie is set: %+v", resp.Result().Cookies())
			}
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	e := echo.New()
	c, resp := httptestutil.Post(e, "/api/auth/logout", nil)

	if err := handlers.LogoutHandler(false)(c); err != nil {
		t.Fatal(err)
	}
	if resp.Code != http.StatusNoContent {
		t.Errorf("status code = %d", resp.Code)
	}
	cookies := resp.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != auth.CookieName || cookies[0].MaxAge >= 0 {
		t.Errorf("cookie is not expired: %+v", cookies)
	}
}

func TestMeHandler(t *testing.T) {
	e := echo.New()
	c, resp := httptestutil.Get(e, "/api/auth/me")
	auth.SetIdentity(c, auth.Identity{UserId: 1, Role: domain.RoleAdmin})

	if err := handlers.MeHandler()(c); err != nil {
		t.Fatal(err)
	}
	assertJSON(t, resp, http.StatusOK, `{"userId":1,"role":"admin"}`)
}
