package httpclient

import (
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthBasic uses HTTP Basic authentication.
	AuthBasic AuthType = iota + 1
	// AuthBearer uses a bearer token, typically an NDEx OAuth/JWT token.
	AuthBearer
)

func (t AuthType) String() string {
	switch t {
	case AuthBasic:
		return "basic"
	case AuthBearer:
		return "bearer"
	default:
		return "none"
	}
}

// AuthConfig holds credentials for one connection. It is immutable once built;
// use BasicAuth or BearerAuth to create one.
type AuthConfig struct {
	kind     AuthType
	username string
	token    string
	header   string
}

// BasicAuth creates credentials sent as "Authorization: Basic base64(user:pass)".
func BasicAuth(username, password string) *AuthConfig {
	cred := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return &AuthConfig{kind: AuthBasic, username: username, header: "Basic " + cred}
}

// BearerAuth creates credentials sent as "Authorization: Bearer <token>".
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{kind: AuthBearer, token: token, header: "Bearer " + token}
}

// Type returns the authentication method.
func (a *AuthConfig) Type() AuthType {
	if a == nil {
		return 0
	}
	return a.kind
}

// Username returns the basic auth user name, or "".
func (a *AuthConfig) Username() string {
	if a == nil {
		return ""
	}
	return a.username
}

// HeaderValue returns the Authorization header value.
func (a *AuthConfig) HeaderValue() string {
	if a == nil {
		return ""
	}
	return a.header
}

// ExpiresAt returns the exp claim of a bearer JWT. The signature is not
// verified; the server remains the authority. ok is false for basic auth,
// opaque tokens and JWTs without an exp claim.
func (a *AuthConfig) ExpiresAt() (exp time.Time, ok bool) {
	if a == nil || a.kind != AuthBearer {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(a.token, claims); err != nil {
		return time.Time{}, false
	}
	nd, err := claims.GetExpirationTime()
	if err != nil || nd == nil {
		return time.Time{}, false
	}
	return nd.Time, true
}

// Expired reports whether a bearer JWT's exp claim is before now.
func (a *AuthConfig) Expired(now time.Time) bool {
	exp, ok := a.ExpiresAt()
	return ok && exp.Before(now)
}

// String redacts the credentials.
func (a *AuthConfig) String() string {
	switch a.Type() {
	case AuthBasic:
		return "basic(" + a.username + ")"
	case AuthBearer:
		return "bearer(***)"
	default:
		return "none"
	}
}
