// Package server exposes the HTTP API: activity, layer, type, share
// and settings CRUD plus assembled wheel layouts and rendered SVGs.
package server

import (
	"net/http"
	"strings"

	"github.com/arshjul/yearwheel/internal/auth"
	"github.com/arshjul/yearwheel/internal/config"
	"github.com/arshjul/yearwheel/internal/service"
)

// Services bundles everything the handlers depend on.
type Services struct {
	Activities service.ActivityService
	Layers     service.LayerService
	Types      service.TypeService
	Shares     service.ShareService
	Settings   service.SettingsService
	Wheel      service.WheelService
}

// Handler routes HTTP requests to the service layer.
type Handler struct {
	svc Services
	cfg config.Config
}

// NewHandler builds a Handler.
func NewHandler(svc Services, cfg config.Config) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

// Router assembles the full middleware chain: metrics and health stay
// open, /api/public and /s are key-authenticated by the share service,
// everything else requires a bearer token.
func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	if h.cfg.DevMode {
		return mux
	}

	mw := auth.NewMiddleware(auth.Config{
		Secret:   h.cfg.JWTSecret,
		Issuer:   h.cfg.JWTIssuer,
		Audience: h.cfg.JWTAudience,
	}, publicRoute, rejectUnauthorized)
	return mw.Wrap(mux)
}

// rejectUnauthorized answers failed token checks with the same JSON
// envelope API handlers use.
func rejectUnauthorized(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusUnauthorized, codeUnauthorized, err.Error())
}

func publicRoute(r *http.Request) bool {
	p := r.URL.Path
	return p == "/healthz" || p == "/metrics" ||
		strings.HasPrefix(p, "/api/public/") || strings.HasPrefix(p, "/s/")
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/activities", instrument("activities", h.activities))
	mux.HandleFunc("/api/activities/", instrument("activity", h.activityByID))
	mux.HandleFunc("/api/layers", instrument("layers", h.layers))
	mux.HandleFunc("/api/layers/", instrument("layer", h.layerByID))
	mux.HandleFunc("/api/activity-types", instrument("activity_types", h.activityTypes))
	mux.HandleFunc("/api/shares", instrument("shares", h.shares))
	mux.HandleFunc("/api/shares/", instrument("share", h.shareByID))
	mux.HandleFunc("/api/public/access", instrument("public_access", h.publicAccess))
	mux.HandleFunc("/api/settings", instrument("settings", h.settings))
	mux.HandleFunc("/api/wheel/layout", instrument("wheel_layout", h.wheelLayout))
	mux.HandleFunc("/api/wheel/svg", instrument("wheel_svg", h.wheelSVG))
	mux.HandleFunc("/healthz", healthz)
	mux.Handle("/metrics", MetricsHandler())
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// callerClaims resolves identity: real claims, or a dev-mode stand-in
// so local runs work without an identity provider.
func (h *Handler) callerClaims(r *http.Request) (*auth.Claims, bool) {
	if claims, ok := auth.ClaimsFrom(r.Context()); ok {
		return claims, true
	}
	if h.cfg.DevMode {
		return &auth.Claims{
			UserID:         "dev-user",
			OrganizationID: "dev-org",
			Roles:          map[string]struct{}{auth.AdminRole: {}},
		}, true
	}
	return nil, false
}
