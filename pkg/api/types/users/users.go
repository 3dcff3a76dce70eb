package users

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/docstokg/docstokg-web/pkg/domain"
)

type User struct {
	UserId    int64     `json:"userId"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	IsBlocked bool      `json:"isBlocked"`
	CreatedAt time.Time `json:"createdAt"`
}

func ComposeUser(u domain.User) User {
	return User{
		UserId:    u.Id,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		IsBlocked: u.IsBlocked,
		CreatedAt: u.CreatedAt,
	}
}

// ListResponse is the body of "GET /admin/users".
type ListResponse struct {
	Users []User `json:"users"`
}

func ComposeList(us []domain.User) ListResponse {
	ret := make([]User, len(us))
	for i := range us {
		ret[i] = ComposeUser(us[i])
	}
	return ListResponse{Users: ret}
}

var ErrMissingField = errors.New("required field is missing")

// SetBlocked is the body of "PATCH /admin/users/:id".
type SetBlocked struct {
	IsBlocked bool `json:"is_blocked"`
}

// UnmarshalJSON accepts only a JSON boolean as "is_blocked".
//
// Strings like "yes", numbers, null or absence are errors.
func (s *SetBlocked) UnmarshalJSON(b []byte) error {
	v := struct {
		IsBlocked *bool `json:"is_blocked"`
	}{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v.IsBlocked == nil {
		return ErrMissingField
	}
	s.IsBlocked = *v.IsBlocked
	return nil
}

// Success is the body of successful mutations.
type Success struct {
	Success bool `json:"success"`
}

// Register is the body of "POST /auth/register".
type Register struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Registered struct {
	UserId int64 `json:"userId"`
}

// Login is the body of "POST /auth/login".
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoggedIn struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Me is the body of "GET /auth/me".
type Me struct {
	UserId int64  `json:"userId"`
	Role   string `json:"role"`
}
