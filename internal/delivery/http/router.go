package http

import (
	"net/http"

	"go-appointment-board/internal/delivery/http/handler"
	"go-appointment-board/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	appointmentHandler *handler.AppointmentHandler
	boardHandler       *handler.BoardHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	boardHandler *handler.BoardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		appointmentHandler: appointmentHandler,
		boardHandler:       boardHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Appointment management (protected)
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}/reminder", r.appointmentHandler.SendReminder).Methods(http.MethodPost)

	// Board sessions (protected)
	protected.HandleFunc("/boards", r.boardHandler.CreateBoard).Methods(http.MethodPost)
	protected.HandleFunc("/boards/{id}", r.boardHandler.GetBoard).Methods(http.MethodGet)
	protected.HandleFunc("/boards/{id}", r.boardHandler.CloseBoard).Methods(http.MethodDelete)
	protected.HandleFunc("/boards/{id}/filter", r.boardHandler.SetFilter).Methods(http.MethodPost)
	protected.HandleFunc("/boards/{id}/filter/{field}", r.boardHandler.ClearFilter).Methods(http.MethodDelete)
	protected.HandleFunc("/boards/{id}/date-filter", r.boardHandler.SetDateFilter).Methods(http.MethodPost)
	protected.HandleFunc("/boards/{id}/sort", r.boardHandler.SetSort).Methods(http.MethodPost)
	protected.HandleFunc("/boards/{id}/columns", r.boardHandler.SetVisibility).Methods(http.MethodPost)
	protected.HandleFunc("/boards/{id}/selection", r.boardHandler.ToggleSelection).Methods(http.MethodPost)
	protected.HandleFunc("/boards/{id}/page", r.boardHandler.Navigate).Methods(http.MethodPost)
	protected.HandleFunc("/boards/{id}/refresh", r.boardHandler.Refresh).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
