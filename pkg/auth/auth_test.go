package auth_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	httptestutil "github.com/docstokg/docstokg-web/internal/testutils/http"
	"github.com/docstokg/docstokg-web/pkg/auth"
	"github.com/docstokg/docstokg-web/pkg/domain"
	"github.com/docstokg/docstokg-web/pkg/utils/try"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var secret = []byte(strings.Repeat("s", auth.MinSecretLength))

func TestNewIssuer(t *testing.T) {
	if _, err := auth.NewIssuer([]byte("short"), time.Hour); !errors.Is(err, auth.ErrWeakSecret) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestIssuer(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	testee := try.To(auth.NewIssuer(secret, time.Hour, auth.WithClock(clock))).OrFatal(t)

	t.Run("issued token is verified", func(t *testing.T) {
		token := try.To(testee.Issue(auth.Identity{UserId: 42, Role: domain.RoleAdmin})).OrFatal(t)
		actual, err := testee.Verify(token)
		if err != nil {
			t.Fatal(err)
		}
		if actual.UserId != 42 || !actual.IsAdmin() {
			t.Errorf("unexpected identity: %+v", actual)
		}
	})

	t.Run("expired token is invalid", func(t *testing.T) {
		token := try.To(testee.Issue(auth.Identity{UserId: 42, Role: domain.RoleUser})).OrFatal(t)
		later := try.To(auth.NewIssuer(
			secret, time.Hour,
			auth.WithClock(func() time.Time { return now.Add(2 * time.Hour) }),
		)).OrFatal(t)
		if _, err := later.Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("token signed with other secret is invalid", func(t *testing.T) {
		other := try.To(auth.NewIssuer(
			[]byte(strings.Repeat("x", auth.MinSecretLength)), time.Hour, auth.WithClock(clock),
		)).OrFatal(t)
		token := try.To(other.Issue(auth.Identity{UserId: 42, Role: domain.RoleAdmin})).OrFatal(t)
		if _, err := testee.Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("token with other algorithm is invalid", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS512, auth.Claims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
			UserId:           42,
			Role:             "admin",
		})
		token := try.To(tok.SignedString(secret)).OrFatal(t)
		if _, err := testee.Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("token with unknown role is invalid", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
			UserId:           42,
			Role:             "root",
		})
		token := try.To(tok.SignedString(secret)).OrFatal(t)
		if _, err := testee.Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("token without expiry is invalid", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{UserId: 42, Role: "admin"})
		token := try.To(tok.SignedString(secret)).OrFatal(t)
		if _, err := testee.Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestMiddleware(t *testing.T) {
	issuer := try.To(auth.NewIssuer(secret, time.Hour)).OrFatal(t)
	token := try.To(issuer.Issue(auth.Identity{UserId: 7, Role: domain.RoleUser})).OrFatal(t)

	type then struct {
		authenticated bool
		userId        int64
	}
	for name, testcase := range map[string]struct {
		when []httptestutil.RequestOption
		then then
	}{
		"cookie": {
			when: []httptestutil.RequestOption{httptestutil.WithCookie(auth.CookieName, token)},
			then: then{authenticated: true, userId: 7},
		},
		"bearer": {
			when: []httptestutil.RequestOption{httptestutil.WithHeader("Authorization", "Bearer "+token)},
			then: then{authenticated: true, userId: 7},
		},
		"cookie is preferred": {
			when: []httptestutil.RequestOption{
				httptestutil.WithCookie(auth.CookieName, token),
				httptestutil.WithHeader("Authorization", "Bearer broken"),
			},
			then: then{authenticated: true, userId: 7},
		},
		"no token": {
			when: nil,
			then: then{authenticated: false},
		},
		"broken token": {
			when: []httptestutil.RequestOption{httptestutil.WithCookie(auth.CookieName, "broken")},
			then: then{authenticated: false},
		},
		"other scheme": {
			when: []httptestutil.RequestOption{httptestutil.WithHeader("Authorization", "Basic "+token)},
			then: then{authenticated: false},
		},
	} {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			c, _ := httptestutil.Get(e, "/api/auth/me", testcase.when...)

			called := false
			err := auth.Middleware(issuer)(func(c echo.Context) error {
				called = true
				id, ok := auth.IdentityOf(c)
				if ok != testcase.then.authenticated {
					t.Errorf("authenticated = %v", ok)
				}
				if ok && id.UserId != testcase.then.userId {
					t.Errorf("user id = %d", id.UserId)
				}
				return nil
			})(c)
			if err != nil {
				t.Fatal(err)
			}
			if !called {
				t.Error("next is not called")
			}
		})
	}
}

func TestRequire(t *testing.T) {
	anonymous := (*auth.Identity)(nil)
	user := &auth.Identity{UserId: 7, Role: domain.RoleUser}
	admin := &auth.Identity{UserId: 1, Role: domain.RoleAdmin}

	for name, testcase := range map[string]struct {
		guard echo.MiddlewareFunc
		when  *auth.Identity
		then  int // 0 means passed
	}{
		"RequireUser: anonymous": {guard: auth.RequireUser, when: anonymous, then: http.StatusUnauthorized},
		"RequireUser: user":      {guard: auth.RequireUser, when: user, then: 0},
		"RequireUser: admin":     {guard: auth.RequireUser, when: admin, then: 0},
		"RequireAdmin: anonymous": {guard: auth.RequireAdmin, when: anonymous, then: http.StatusForbidden},
		"RequireAdmin: user":      {guard: auth.RequireAdmin, when: user, then: http.StatusForbidden},
		"RequireAdmin: admin":     {guard: auth.RequireAdmin, when: admin, then: 0},
	} {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			c, _ := httptestutil.Get(e, "/api/admin/users")
			if testcase.when != nil {
				auth.SetIdentity(c, *testcase.when)
			}

			called := false
			err := testcase.guard(func(echo.Context) error {
				called = true
				return nil
			})(c)

			if testcase.then == 0 {
				if err != nil || !called {
					t.Errorf("not passed: called = %v, err = %v", called, err)
				}
				return
			}
			if called {
				t.Error("next is called")
			}
			if herr := new(echo.HTTPError); !errors.As(err, &herr) || herr.Code != testcase.then {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	hash := try.To(auth.HashPassword("correct horse")).OrFatal(t)

	if err := auth.ComparePassword(hash, "correct horse"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := auth.ComparePassword(hash, "battery staple"); !errors.Is(err, auth.ErrPasswordMismatch) {
		t.Errorf("unexpected error: %v", err)
	}
}
