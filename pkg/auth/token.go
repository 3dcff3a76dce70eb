package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/docstokg/docstokg-web/pkg/domain"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// MinSecretLength is the minimum length of secrets to sign tokens, in bytes.
const MinSecretLength = 32

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWeakSecret   = fmt.Errorf("secret should have %d bytes or more", MinSecretLength)
)

// Identity is the caller of a request.
type Identity struct {
	UserId int64
	Role   domain.Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == domain.RoleAdmin
}

// Claims of tokens issued by Issuer.
type Claims struct {
	jwt.RegisteredClaims

	// private claims
	UserId int64  `json:"user_id"`
	Role   string `json:"role"`
}

// Issuer signs and verifies tokens with HMAC-SHA256.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type IssuerOption func(*Issuer) *Issuer

// WithClock replaces the clock. For testing.
func WithClock(now func() time.Time) IssuerOption {
	return func(i *Issuer) *Issuer {
		i.now = now
		return i
	}
}

// NewIssuer returns an Issuer.
//
// # Args
//
// - secret: key to sign tokens. It should have MinSecretLength bytes or more.
//
// - ttl: time to live of tokens.
func NewIssuer(secret []byte, ttl time.Duration, options ...IssuerOption) (*Issuer, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	i := &Issuer{secret: secret, ttl: ttl, now: time.Now}
	for _, opt := range options {
		i = opt(i)
	}
	return i, nil
}

// Issue signs a new token for the identity.
func (i *Issuer) Issue(id Identity) (string, error) {
	now := i.now().Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			// jti
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserId: id.UserId,
		Role:   string(id.Role),
	})
	return tok.SignedString(i.secret)
}

// Verify checks the token and returns the identity in it.
//
// Tokens not signed with HS256 and the secret, expired, or with unknown roles are ErrInvalidToken.
func (i *Issuer) Verify(token string) (Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		token, claims,
		func(*jwt.Token) (interface{}, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return Identity{}, errors.Join(ErrInvalidToken, err)
	}

	role, err := domain.AsRole(claims.Role)
	if err != nil {
		return Identity{}, errors.Join(ErrInvalidToken, err)
	}
	return Identity{UserId: claims.UserId, Role: role}, nil
}

// TTL is the time to live of tokens.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}
