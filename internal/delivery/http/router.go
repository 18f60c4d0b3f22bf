package http

import (
	"net/http"

	"healthconnect/internal/delivery/http/handler"
	"healthconnect/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	appointmentHandler  *handler.AppointmentHandler
	consultationHandler *handler.ConsultationHandler
	reportHandler       *handler.ReportHandler
	doctorHandler       *handler.DoctorHandler
	chatbotHandler      *handler.ChatbotHandler
	sessionMiddleware   *middleware.SessionMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	consultationHandler *handler.ConsultationHandler,
	reportHandler *handler.ReportHandler,
	doctorHandler *handler.DoctorHandler,
	chatbotHandler *handler.ChatbotHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		appointmentHandler:  appointmentHandler,
		consultationHandler: consultationHandler,
		reportHandler:       reportHandler,
		doctorHandler:       doctorHandler,
		chatbotHandler:      chatbotHandler,
		sessionMiddleware:   sessionMiddleware,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Identity routes (session resolved, not required)
	r.router.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Public API
	api := r.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/user", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	api.HandleFunc("/book-appointment", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	api.HandleFunc("/book-consultation", r.consultationHandler.BookConsultation).Methods(http.MethodPost)
	api.HandleFunc("/consultation-config", r.consultationHandler.GetConsultationConfig).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.GetDoctors).Methods(http.MethodGet)
	api.HandleFunc("/chatbot", r.chatbotHandler.Chat).Methods(http.MethodPost)

	// Protected API (session or bearer token). Registered as a second /api
	// subrouter: mux falls through to it when no public /api route matches,
	// so it must come after the public one.
	protected := r.router.PathPrefix("/api").Subrouter()
	protected.Use(r.sessionMiddleware.RequireSession)
	protected.HandleFunc("/reports", r.reportHandler.GetMyReports).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.sessionMiddleware.Resolve)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
