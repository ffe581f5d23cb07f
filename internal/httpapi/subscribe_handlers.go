package httpapi

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"bordful/internal/subscribe"
)

type SubscribeHandler struct {
	Service *subscribe.Service
}

type subscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h SubscribeHandler) Post(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		WriteError(w, r, http.StatusNotFound, "disabled", "subscriptions are not enabled")
		return
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	var req subscribeRequest
	if err := dec.Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}

	err := h.Service.Subscribe(r.Context(), subscribe.Request{
		Email: req.Email,
		Name:  req.Name,
		IP:    clientIP(r),
	})
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, map[string]any{"ok": true})
	case errors.Is(err, subscribe.ErrInvalidEmail):
		WriteError(w, r, http.StatusBadRequest, "invalid_email", "a valid email address is required")
	case errors.Is(err, subscribe.ErrRateLimited):
		WriteError(w, r, http.StatusTooManyRequests, "rate_limited", "too many attempts, try again later")
	case errors.Is(err, subscribe.ErrDuplicate):
		// Treat as success so the form cannot be used to probe the list.
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	default:
		WriteError(w, r, http.StatusBadGateway, "provider_error", "could not complete the subscription")
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
