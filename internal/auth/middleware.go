package auth

import (
	"net/http"
	"strings"
)

// Skip marks requests that bypass bearer-token checks, such as health
// probes and key-authenticated share routes.
type Skip func(r *http.Request) bool

// Reject writes the response for a failed authentication. The server
// injects its JSON error envelope here so a 401 looks like every
// other API error.
type Reject func(w http.ResponseWriter, r *http.Request, err error)

// Middleware validates bearer tokens and stores the resulting claims
// in the request context for handlers to pick up via ClaimsFrom.
type Middleware struct {
	cfg    Config
	skip   Skip
	reject Reject
}

// NewMiddleware builds the middleware. A nil reject falls back to a
// plain-text 401.
func NewMiddleware(cfg Config, skip Skip, reject Reject) Middleware {
	if reject == nil {
		reject = func(w http.ResponseWriter, _ *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
		}
	}
	return Middleware{cfg: cfg, skip: skip, reject: reject}
}

// Wrap guards next with token validation.
func (m Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.skip != nil && m.skip(r) {
			next.ServeHTTP(w, r)
			return
		}

		token, err := bearerToken(r)
		if err == nil {
			var claims *Claims
			if claims, err = Parse(token, m.cfg); err == nil {
				next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
				return
			}
		}
		m.reject(w, r, err)
	})
}

// bearerToken pulls the token out of the Authorization header.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidToken
	}
	return strings.TrimSpace(token), nil
}
