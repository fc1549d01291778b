package http

import (
	"net/http"

	"telehealth-connect/internal/delivery/http/handler"
	"telehealth-connect/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	connectionHandler *handler.ConnectionHandler
	chatHandler       *handler.ChatHandler
	assistantHandler  *handler.AssistantHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	connectionHandler *handler.ConnectionHandler,
	chatHandler *handler.ChatHandler,
	assistantHandler *handler.AssistantHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		userHandler:       userHandler,
		connectionHandler: connectionHandler,
		chatHandler:       chatHandler,
		assistantHandler:  assistantHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check and metrics
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Directory routes (protected)
	directory := api.NewRoute().Subrouter()
	directory.Use(r.authMiddleware.Authenticate)
	directory.HandleFunc("/doctors", r.userHandler.ListDoctors).Methods(http.MethodGet)
	directory.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)

	// Connection request routes (protected)
	connections := api.NewRoute().Subrouter()
	connections.Use(r.authMiddleware.Authenticate)
	connections.HandleFunc("/connections", r.connectionHandler.CreateConnection).Methods(http.MethodPost)
	connections.HandleFunc("/connections", r.connectionHandler.ListForDoctor).Methods(http.MethodGet)
	connections.HandleFunc("/appointments/{patientId}", r.connectionHandler.ListForPatient).Methods(http.MethodGet)

	// Status updates are a doctor-side action
	connectionUpdates := api.NewRoute().Subrouter()
	connectionUpdates.Use(r.authMiddleware.Authenticate)
	connectionUpdates.Use(middleware.RequireDoctor)
	connectionUpdates.HandleFunc("/connections", r.connectionHandler.UpdateStatus).Methods(http.MethodPut)

	// Chat routes (protected)
	chat := api.NewRoute().Subrouter()
	chat.Use(r.authMiddleware.Authenticate)
	chat.HandleFunc("/chat", r.chatHandler.GetChat).Methods(http.MethodGet)
	chat.HandleFunc("/chat", r.chatHandler.SendMessage).Methods(http.MethodPost)

	// AgentForce assistant proxy and Slack notification (public, the
	// assistant widget runs pre-login)
	api.HandleFunc("/assistant/session", r.assistantHandler.CreateSession).Methods(http.MethodPost)
	api.HandleFunc("/assistant/message", r.assistantHandler.SendMessage).Methods(http.MethodPost)
	api.HandleFunc("/notify", r.assistantHandler.Notify).Methods(http.MethodPost)

	// Global middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(middleware.Metrics)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
