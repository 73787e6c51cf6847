// Package auth validates bearer tokens issued by the identity
// provider and exposes the normalized claims the rest of the service
// keys tenancy on. Tokens carry the Azure AD style oid/tid claims: oid
// is the user, tid the organization.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminRole grants write access to organization-level configuration
// such as activity types.
const AdminRole = "admin.write"

// Config holds token verification parameters.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
}

// Claims is the payload extracted from a validated token.
type Claims struct {
	Subject        string
	UserID         string
	OrganizationID string
	Email          string
	DisplayName    string
	Roles          map[string]struct{}
	ExpiresAt      time.Time
}

// ErrMissingToken is returned when the Authorization header is absent.
var ErrMissingToken = errors.New("missing bearer token")

// ErrInvalidToken wraps parsing/validation errors.
var ErrInvalidToken = errors.New("invalid bearer token")

// Parse validates a JWT and returns normalized claims.
func Parse(token string, cfg Config) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	opts := []jwt.ParserOption{
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)
	userID, _ := claims["oid"].(string)
	organizationID, _ := claims["tid"].(string)
	if userID == "" || organizationID == "" {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	displayName, _ := claims["name"].(string)

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("%w: missing expiry", ErrInvalidToken)
	}

	return &Claims{
		Subject:        subject,
		UserID:         userID,
		OrganizationID: organizationID,
		Email:          email,
		DisplayName:    displayName,
		Roles:          normalizeRoles(claims["roles"]),
		ExpiresAt:      exp.Time,
	}, nil
}

func normalizeRoles(value interface{}) map[string]struct{} {
	out := make(map[string]struct{})
	switch v := value.(type) {
	case []interface{}:
		for _, item := range v {
			if str, ok := item.(string); ok && str != "" {
				out[str] = struct{}{}
			}
		}
	case []string:
		for _, str := range v {
			if str != "" {
				out[str] = struct{}{}
			}
		}
	case string:
		for _, str := range strings.Split(v, " ") {
			str = strings.TrimSpace(str)
			if str != "" {
				out[str] = struct{}{}
			}
		}
	}
	return out
}

// HasRole reports whether the claim set includes the provided role.
func (c *Claims) HasRole(role string) bool {
	if c == nil {
		return false
	}
	_, ok := c.Roles[role]
	return ok
}

// IsAdmin reports whether the user can change organization-level
// configuration.
func (c *Claims) IsAdmin() bool {
	return c.HasRole(AdminRole)
}
