package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/arshjul/yearwheel/internal/render"
	"github.com/arshjul/yearwheel/internal/service"
	"github.com/arshjul/yearwheel/internal/wheel"
)

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.callerClaims(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
		return
	}

	switch r.Method {
	case http.MethodPost:
		var req ActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "unable to parse body")
			return
		}
		a, err := req.toDomain(claims.OrganizationID, claims.UserID)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
			return
		}

		if req.RepeatInterval != "" {
			occurrences, err := h.svc.Activities.CreateRepeating(r.Context(), a,
				domain.RepeatInterval(req.RepeatInterval), req.RepeatCount)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, toActivityViews(occurrences))
			return
		}

		if err := h.svc.Activities.Create(r.Context(), a); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toActivityView(a))

	case http.MethodGet:
		var (
			activities []*domain.Activity
			err        error
		)
		if layerID := r.URL.Query().Get("layerId"); layerID != "" {
			activities, err = h.svc.Activities.ListByLayer(r.Context(), claims.OrganizationID, layerID)
		} else {
			activities, err = h.svc.Activities.ListByOrganization(r.Context(), claims.OrganizationID)
		}
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toActivityViews(activities))

	default:
		writeError(w, http.StatusMethodNotAllowed, codeBadRequest, "unsupported method")
	}
}

func (h *Handler) activityByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.callerClaims(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/activities/")
	if id == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "missing activity id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		a, err := h.svc.Activities.GetByID(r.Context(), claims.OrganizationID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toActivityView(a))

	case http.MethodPut:
		var req ActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "unable to parse body")
			return
		}
		existing, err := h.svc.Activities.GetByID(r.Context(), claims.OrganizationID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if err := req.applyTo(existing); err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
			return
		}
		if err := h.svc.Activities.Update(r.Context(), existing); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toActivityView(existing))

	case http.MethodDelete:
		if r.URL.Query().Get("group") == "true" {
			n, err := h.svc.Activities.DeleteGroup(r.Context(), claims.OrganizationID, id)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
			return
		}
		if err := h.svc.Activities.Delete(r.Context(), claims.OrganizationID, id); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeError(w, http.StatusMethodNotAllowed, codeBadRequest, "unsupported method")
	}
}

func (h *Handler) layers(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.callerClaims(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
		return
	}

	switch r.Method {
	case http.MethodPost:
		var req LayerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "unable to parse body")
			return
		}
		l := req.toDomain(claims.OrganizationID, claims.UserID)
		if err := h.svc.Layers.Create(r.Context(), l); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toLayerView(l))

	case http.MethodGet:
		layers, err := h.svc.Layers.ListByOrganization(r.Context(), claims.OrganizationID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toLayerViews(layers))

	case http.MethodPut:
		// Ring reorder: PUT /api/layers with {"order": [ids...]}.
		var req struct {
			Order []string `json:"order"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "unable to parse body")
			return
		}
		if err := h.svc.Layers.Reorder(r.Context(), claims.OrganizationID, req.Order); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeError(w, http.StatusMethodNotAllowed, codeBadRequest, "unsupported method")
	}
}

func (h *Handler) layerByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.callerClaims(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/layers/")
	if id == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "missing layer id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		l, err := h.svc.Layers.GetByID(r.Context(), claims.OrganizationID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toLayerView(l))

	case http.MethodPut:
		var req LayerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "unable to parse body")
			return
		}
		existing, err := h.svc.Layers.GetByID(r.Context(), claims.OrganizationID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		req.applyTo(existing)
		if err := h.svc.Layers.Update(r.Context(), existing); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toLayerView(existing))

	case http.MethodDelete:
		if err := h.svc.Layers.Delete(r.Context(), claims.OrganizationID, id); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeError(w, http.StatusMethodNotAllowed, codeBadRequest, "unsupported method")
	}
}

func (h *Handler) activityTypes(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.callerClaims(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
		return
	}

	switch r.Method {
	case http.MethodGet:
		types, err := h.svc.Types.List(r.Context(), claims.OrganizationID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, types)

	case http.MethodPut:
		if !claims.IsAdmin() {
			writeError(w, http.StatusForbidden, codeUnauthorized, "admin role required")
			return
		}
		var req TypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "unable to parse body")
			return
		}
		t := &domain.ActivityTypeConfig{
			Key:            req.Key,
			Label:          req.Label,
			Icon:           req.Icon,
			Color:          req.Color,
			HighlightColor: req.HighlightColor,
			Description:    req.Description,
			SortOrder:      req.SortOrder,
			OrganizationID: claims.OrganizationID,
		}
		if err := h.svc.Types.Upsert(r.Context(), t); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)

	default:
		writeError(w, http.StatusMethodNotAllowed, codeBadRequest, "unsupported method")
	}
}

func (h *Handler) shares(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.callerClaims(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
		return
	}
	now := time.Now().UTC()

	switch r.Method {
	case http.MethodPost:
		var req ShareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "unable to parse body")
			return
		}
		share, err := h.svc.Shares.Create(r.Context(), service.CreateShareParams{
			OrganizationID: claims.OrganizationID,
			CreatedBy:      claims.UserID,
			Name:           req.Name,
			Description:    req.Description,
			Visibility:     domain.ShareVisibility(req.Visibility),
			LayerConfig:    req.LayerConfig,
			ViewSettings:   req.ViewSettings,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toShareView(share, true, h.cfg.BaseURL, now))

	case http.MethodGet:
		shares, err := h.svc.Shares.List(r.Context(), claims.OrganizationID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		views := make([]ShareView, 0, len(shares))
		for _, s := range shares {
			views = append(views, toShareView(s, false, "", now))
		}
		writeJSON(w, http.StatusOK, views)

	default:
		writeError(w, http.StatusMethodNotAllowed, codeBadRequest, "unsupported method")
	}
}

func (h *Handler) shareByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.callerClaims(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/api/shares/")
	id, action, _ := strings.Cut(rest, "/")
	if id == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "missing share id")
		return
	}
	now := time.Now().UTC()

	switch {
	case r.Method == http.MethodPost && action == "renew":
		share, err := h.svc.Shares.Renew(r.Context(), claims.OrganizationID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toShareView(share, false, "", now))

	case r.Method == http.MethodGet && action == "":
		share, err := h.svc.Shares.GetByID(r.Context(), claims.OrganizationID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toShareView(share, false, "", now))

	case r.Method == http.MethodDelete && action == "":
		if err := h.svc.Shares.Revoke(r.Context(), claims.OrganizationID, id); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeError(w, http.StatusMethodNotAllowed, codeBadRequest, "unsupported method")
	}
}

func (h *Handler) publicAccess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeBadRequest, "unsupported method")
		return
	}
	var req AccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "unable to parse body")
		return
	}

	access, err := h.svc.Shares.Access(r.Context(), req.ShortCode, req.ShareKey)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	name := access.Share.Name
	if access.Share.ViewSettings.CustomTitle != "" {
		name = access.Share.ViewSettings.CustomTitle
	}
	writeJSON(w, http.StatusOK, AccessView{
		Name:         name,
		ViewSettings: access.Share.ViewSettings,
		Layers:       toLayerViews(access.Layers),
		Activities:   toActivityViews(access.Activities),
	})
}

func (h *Handler) settings(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.callerClaims(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
		return
	}

	switch r.Method {
	case http.MethodGet:
		settings, err := h.svc.Settings.Get(r.Context(), claims.OrganizationID, claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, SettingsPayload{
			LayerOrder:      settings.LayerOrder,
			LayerVisibility: settings.LayerVisibility,
			Theme:           string(settings.Theme),
		})

	case http.MethodPut:
		var req SettingsPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "unable to parse body")
			return
		}
		settings := &domain.UserSettings{
			UserID:          claims.UserID,
			OrganizationID:  claims.OrganizationID,
			LayerOrder:      req.LayerOrder,
			LayerVisibility: req.LayerVisibility,
			Theme:           domain.ShareTheme(req.Theme),
		}
		if err := h.svc.Settings.Update(r.Context(), settings); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeError(w, http.StatusMethodNotAllowed, codeBadRequest, "unsupported method")
	}
}

// wheelParams reads the shared layout query parameters.
func (h *Handler) wheelParams(r *http.Request, organizationID, userID string) (service.WheelParams, error) {
	p := service.WheelParams{
		OrganizationID: organizationID,
		UserID:         userID,
		Viewport:       wheel.ViewportFull,
		HighlightedID:  r.URL.Query().Get("focus"),
	}
	if r.URL.Query().Get("viewport") == string(wheel.ViewportCompact) {
		p.Viewport = wheel.ViewportCompact
	}
	if today := r.URL.Query().Get("today"); today != "" {
		t, err := time.Parse(dateLayout, today)
		if err != nil {
			return p, err
		}
		p.Today = t
	}
	return p, nil
}

func (h *Handler) wheelLayout(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.callerClaims(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeBadRequest, "unsupported method")
		return
	}

	params, err := h.wheelParams(r, claims.OrganizationID, claims.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid today date")
		return
	}

	start := time.Now()
	frame, err := h.svc.Wheel.Frame(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	recordLayoutPass(time.Since(start))

	writeJSON(w, http.StatusOK, frame)
}

func (h *Handler) wheelSVG(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.callerClaims(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeBadRequest, "unsupported method")
		return
	}

	params, err := h.wheelParams(r, claims.OrganizationID, claims.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid today date")
		return
	}

	start := time.Now()
	frame, err := h.svc.Wheel.Frame(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	recordLayoutPass(time.Since(start))

	style := render.StyleForTheme(domain.ShareTheme(r.URL.Query().Get("theme")))
	svg := render.SVG(render.Frame{
		Layout:   frame.Layout,
		ViewBox:  frame.ViewBox,
		Rotation: frame.Rotation,
	}, style)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(svg))
}
