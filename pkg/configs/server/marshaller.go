package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/docstokg/docstokg-web/pkg/auth"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// ServerConfigMarshall is the form of config files.
//
// This type is mutable. Use Seal to get validated ServerConfig.
type ServerConfigMarshall struct {
	Port  int                 `yaml:"port,omitempty"`
	DBURI string              `yaml:"dburi"`
	Auth  *AuthConfigMarshall `yaml:"auth"`
}

type AuthConfigMarshall struct {
	Secret       string `yaml:"secret,omitempty"`
	SecretFile   string `yaml:"secretFile,omitempty"`
	TokenTTL     string `yaml:"tokenTTL,omitempty"`
	CookieSecure bool   `yaml:"cookieSecure"`
}

type option struct {
	lookupEnv func(string) (string, bool)
	readFile  func(string) ([]byte, error)
}

type Option func(*option) *option

// WithEnv replaces the source of environment variables. os.LookupEnv is used by default.
func WithEnv(lookupEnv func(string) (string, bool)) Option {
	return func(o *option) *option {
		o.lookupEnv = lookupEnv
		return o
	}
}

// Load reads a config file, and applies environment variables over it.
func Load(filepath string, opts ...Option) (*ServerConfig, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Unmarshal(content, opts...)
}

func Unmarshal(conf []byte, opts ...Option) (*ServerConfig, error) {
	out := &ServerConfigMarshall{}
	dec := yaml.NewDecoder(bytes.NewReader(conf))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return out.Seal(opts...)
}

// Seal applies environment variables, then validates the config.
func (m *ServerConfigMarshall) Seal(opts ...Option) (*ServerConfig, error) {
	o := &option{lookupEnv: os.LookupEnv, readFile: os.ReadFile}
	for _, opt := range opts {
		o = opt(o)
	}

	port := m.Port
	if port == 0 {
		port = DefaultPort
	}
	if port < 0 || 65535 < port {
		return nil, fmt.Errorf("%w: port: out of range: %d", ErrInvalidConfig, port)
	}

	dburi := m.DBURI
	if v, ok := o.lookupEnv(EnvDBURI); ok && v != "" {
		dburi = v
	}
	if dburi == "" {
		return nil, fmt.Errorf("%w: dburi: required", ErrInvalidConfig)
	}

	am := m.Auth
	if am == nil {
		am = &AuthConfigMarshall{}
	}
	ac, err := am.seal(o)
	if err != nil {
		return nil, err
	}

	return &ServerConfig{port: port, dburi: dburi, auth: ac}, nil
}

func (am *AuthConfigMarshall) seal(o *option) (*AuthConfig, error) {
	secret := []byte(am.Secret)
	if am.SecretFile != "" {
		if am.Secret != "" {
			return nil, fmt.Errorf("%w: auth: secret and secretFile are exclusive", ErrInvalidConfig)
		}
		s, err := o.readFile(am.SecretFile)
		if err != nil {
			return nil, fmt.Errorf("%w: auth.secretFile: %w", ErrInvalidConfig, err)
		}
		secret = bytes.TrimSpace(s)
	}
	if v, ok := o.lookupEnv(EnvAuthSecret); ok && v != "" {
		secret = []byte(v)
	}
	if len(secret) < auth.MinSecretLength {
		return nil, fmt.Errorf(
			"%w: auth.secret: should be at least %d bytes", ErrInvalidConfig, auth.MinSecretLength,
		)
	}

	ttl := DefaultTokenTTL
	if am.TokenTTL != "" {
		d, err := time.ParseDuration(am.TokenTTL)
		if err != nil {
			return nil, fmt.Errorf("%w: auth.tokenTTL: %w", ErrInvalidConfig, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("%w: auth.tokenTTL: should be positive", ErrInvalidConfig)
		}
		ttl = d
	}

	return &AuthConfig{
		secret:       secret,
		tokenTTL:     ttl,
		cookieSecure: am.CookieSecure,
	}, nil
}
