package domain

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func AsRole(s string) (Role, error) {
	switch s {
	case string(RoleAdmin):
		return RoleAdmin, nil
	case string(RoleUser):
		return RoleUser, nil
	}
	return "", fmt.Errorf("unknown role: %s", s)
}

type User struct {
	Id        int64
	Email     string
	FirstName string
	LastName  string
	Role      Role
	IsBlocked bool
	CreatedAt time.Time

	// bcrypt hash. Never leaves the server.
	PasswordHash []byte
}

// NewUser is a request to register a user.
type NewUser struct {
	Email        string
	FirstName    string
	LastName     string
	PasswordHash []byte
}
