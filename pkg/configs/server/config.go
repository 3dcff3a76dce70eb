package server

import (
	"time"
)

const (
	EnvDBURI      = "DOCSTOKG_DBURI"
	EnvAuthSecret = "DOCSTOKG_AUTH_SECRET"

	DefaultPort     = 8080
	DefaultTokenTTL = 24 * time.Hour
)

// Configuration of docstokgd.
//
// To get ServerConfig, use Load or Unmarshal.
type ServerConfig struct {
	port  int
	dburi string
	auth  *AuthConfig
}

// Port to listen.
func (c *ServerConfig) Port() int {
	return c.port
}

// Connection string for database.
func (c *ServerConfig) DBURI() string {
	return c.dburi
}

func (c *ServerConfig) Auth() *AuthConfig {
	return c.auth
}

// Configuration of tokens.
type AuthConfig struct {
	secret       []byte
	tokenTTL     time.Duration
	cookieSecure bool
}

// Secret to sign tokens. It is at least 32 bytes.
func (a *AuthConfig) Secret() []byte {
	return a.secret
}

func (a *AuthConfig) TokenTTL() time.Duration {
	return a.tokenTTL
}

// CookieSecure tells the token cookie should have "Secure" attribute.
func (a *AuthConfig) CookieSecure() bool {
	return a.cookieSecure
}
