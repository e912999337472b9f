package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"deckhub-backend/internal/service"
)

type createLeadRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Password string `json:"password"`
	Source   string `json:"source"`
}

func (s *Server) handleCreateLead(w http.ResponseWriter, r *http.Request) {
	var req createLeadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lead, err := s.leads.CreateLead(r.Context(), req.Name, req.Email, req.Company, req.Password, req.Source)
	if err != nil {
		if errors.Is(err, service.ErrLeadExists) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "lead": lead})
}

type hubLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleHubLogin(w http.ResponseWriter, r *http.Request) {
	var req hubLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, sess, err := s.auth.LoginLead(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "sessionId": id, "session": sess})
}

func (s *Server) handleHubLogout(w http.ResponseWriter, r *http.Request) {
	if id := sessionID(r); id != "" {
		_ = s.auth.LogoutLead(id)
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Value: "", Path: "/", MaxAge: -1})
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleHubSession(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "session": sess})
}

// handleHubDecks refetches the lead's grant set and returns the decks they
// may open.
func (s *Server) handleHubDecks(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	leadID := sess.User.ID

	if err := s.access.RefreshAccess(r.Context(), leadID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"decks":   s.access.AccessibleDecks(leadID),
	})
}

func (s *Server) handleRequestAccess(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	deckID := mux.Vars(r)["deckID"]

	req, err := s.access.RequestAccess(r.Context(), sess.User.ID, deckID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateRequest):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrUnknownDeck):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "request": req})
}

func (s *Server) handleDeckOpened(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	deckID := mux.Vars(r)["deckID"]

	if !s.access.CheckAccess(sess.User.ID, deckID) {
		writeError(w, http.StatusForbidden, "deck access not granted")
		return
	}
	if err := s.leads.MarkDeckOpened(r.Context(), sess.User.ID, deckID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleDeckRead(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	deckID := mux.Vars(r)["deckID"]

	if !s.access.CheckAccess(sess.User.ID, deckID) {
		writeError(w, http.StatusForbidden, "deck access not granted")
		return
	}
	if err := s.leads.MarkDeckRead(r.Context(), sess.User.ID, deckID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
