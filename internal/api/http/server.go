// Package http exposes the deck hub and admin console over a JSON API.
// The hub surface authenticates with the session cache; the admin surface
// authenticates with a bearer token and a fail-closed profile check.
package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"deckhub-backend/internal/feed"
	"deckhub-backend/internal/security"
	"deckhub-backend/internal/service"
)

type Server struct {
	auth    service.AuthService
	access  service.AccessService
	notes   service.NotificationService
	leads   service.LeadService
	tasks   service.TaskService
	reviews service.ReviewService
	tokens  security.TokenManager
	events  *feed.Hub
}

func NewServer(
	auth service.AuthService,
	access service.AccessService,
	notes service.NotificationService,
	leads service.LeadService,
	tasks service.TaskService,
	reviews service.ReviewService,
	tokens security.TokenManager,
	events *feed.Hub,
) *Server {
	return &Server{
		auth:    auth,
		access:  access,
		notes:   notes,
		leads:   leads,
		tasks:   tasks,
		reviews: reviews,
		tokens:  tokens,
		events:  events,
	}
}

// Router registers every route under /api/v1.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public marketing surface.
	api.HandleFunc("/leads", s.handleCreateLead).Methods(http.MethodPost)

	// Deck hub, session-authenticated.
	api.HandleFunc("/hub/login", s.handleHubLogin).Methods(http.MethodPost)
	api.HandleFunc("/hub/logout", s.handleHubLogout).Methods(http.MethodPost)
	api.HandleFunc("/hub/session", s.requireLead(s.handleHubSession)).Methods(http.MethodGet)
	api.HandleFunc("/hub/decks", s.requireLead(s.handleHubDecks)).Methods(http.MethodGet)
	api.HandleFunc("/hub/decks/{deckID}/request", s.requireLead(s.handleRequestAccess)).Methods(http.MethodPost)
	api.HandleFunc("/hub/decks/{deckID}/opened", s.requireLead(s.handleDeckOpened)).Methods(http.MethodPost)
	api.HandleFunc("/hub/decks/{deckID}/read", s.requireLead(s.handleDeckRead)).Methods(http.MethodPost)

	// Admin console, token-authenticated with a fail-closed role check.
	api.HandleFunc("/admin/login", s.handleAdminLogin).Methods(http.MethodPost)
	api.HandleFunc("/admin/notifications", s.requireAdmin(s.handleListNotifications)).Methods(http.MethodGet)
	api.HandleFunc("/admin/notifications/stream", s.requireAdmin(s.handleNotificationStream)).Methods(http.MethodGet)
	api.HandleFunc("/admin/notifications/read-all", s.requireAdmin(s.handleMarkAllRead)).Methods(http.MethodPost)
	api.HandleFunc("/admin/notifications/{id}/read", s.requireAdmin(s.handleMarkRead)).Methods(http.MethodPost)
	api.HandleFunc("/admin/requests", s.requireAdmin(s.handleListRequests)).Methods(http.MethodGet)
	api.HandleFunc("/admin/requests/{id}/approve", s.requireAdmin(s.handleApproveRequest)).Methods(http.MethodPost)
	api.HandleFunc("/admin/requests/{id}/deny", s.requireAdmin(s.handleDenyRequest)).Methods(http.MethodPost)
	api.HandleFunc("/admin/leads", s.requireAdmin(s.handleListLeads)).Methods(http.MethodGet)
	api.HandleFunc("/admin/leads/{id}", s.requireAdmin(s.handleUpdateLead)).Methods(http.MethodPatch)
	api.HandleFunc("/admin/leads/{id}", s.requireAdmin(s.handleDeleteLead)).Methods(http.MethodDelete)
	api.HandleFunc("/admin/leads/{id}/grants", s.requireAdmin(s.handleListGrants)).Methods(http.MethodGet)
	api.HandleFunc("/admin/leads/{id}/grant-all", s.requireAdmin(s.handleGrantAll)).Methods(http.MethodPost)
	api.HandleFunc("/admin/leads/{id}/revoke-all", s.requireAdmin(s.handleRevokeAll)).Methods(http.MethodPost)
	api.HandleFunc("/admin/leads/{id}/read-status", s.requireAdmin(s.handleReadStatus)).Methods(http.MethodGet)
	api.HandleFunc("/admin/tasks", s.requireAdmin(s.handleListTasks)).Methods(http.MethodGet)
	api.HandleFunc("/admin/tasks", s.requireAdmin(s.handleCreateTask)).Methods(http.MethodPost)
	api.HandleFunc("/admin/tasks/{id}", s.requireAdmin(s.handleUpdateTask)).Methods(http.MethodPatch)
	api.HandleFunc("/admin/tasks/{id}", s.requireAdmin(s.handleDeleteTask)).Methods(http.MethodDelete)
	api.HandleFunc("/admin/tasks/{id}/advance", s.requireAdmin(s.handleAdvanceTask)).Methods(http.MethodPost)
	api.HandleFunc("/admin/tasks/{id}/toggle", s.requireAdmin(s.handleToggleTask)).Methods(http.MethodPost)
	api.HandleFunc("/admin/decks/{deckID}/reviews", s.requireAdmin(s.handleGetReviews)).Methods(http.MethodGet)
	api.HandleFunc("/admin/decks/{deckID}/reviews", s.requireAdmin(s.handleUpsertReview)).Methods(http.MethodPut)

	return r
}
