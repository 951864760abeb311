package api

import (
	"net/http"
	"os"

	"github.com/garnizeh/dogwalk/internal/config"
	"github.com/garnizeh/dogwalk/internal/db"
	"github.com/garnizeh/dogwalk/internal/repository/sqlite"
	"github.com/gorilla/mux"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, db *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(TimeoutMiddleware(cfg.APITimeout))
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(db, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	usersHandler := NewUsersHandler(repo)
	dogsHandler := NewDogsHandler(repo)
	walkRequestsHandler := NewWalkRequestsHandler(repo)
	applicationsHandler := NewApplicationsHandler(repo)
	ratingsHandler := NewRatingsHandler(repo)
	paymentsHandler := NewPaymentsHandler(repo)
	walkersHandler := NewWalkersHandler(repo)

	// System endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	// Open API endpoints
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/users", usersHandler.CreateUser).Methods("POST")
	api.HandleFunc("/users", usersHandler.ListUsers).Methods("GET")
	api.HandleFunc("/dogs", dogsHandler.ListDogs).Methods("GET")
	api.HandleFunc("/walkrequests", walkRequestsHandler.ListWalkRequests).Methods("GET")
	api.HandleFunc("/walkrequests", walkRequestsHandler.CreateWalkRequest).Methods("POST")
	api.HandleFunc("/walkrequests/open", walkRequestsHandler.ListOpenWalkRequests).Methods("GET")
	api.HandleFunc("/walkrequests/{id:[0-9]+}/status", walkRequestsHandler.UpdateWalkRequestStatus).Methods("PUT")
	api.HandleFunc("/applications", applicationsHandler.ListApplications).Methods("GET")
	api.HandleFunc("/applications", applicationsHandler.CreateApplication).Methods("POST")
	api.HandleFunc("/applications/{id:[0-9]+}/status", applicationsHandler.UpdateApplicationStatus).Methods("PUT")
	api.HandleFunc("/ratings", ratingsHandler.ListRatings).Methods("GET")
	api.HandleFunc("/ratings", ratingsHandler.CreateRating).Methods("POST")
	api.HandleFunc("/payments", paymentsHandler.ListPayments).Methods("GET")
	api.HandleFunc("/payments", paymentsHandler.CreatePayment).Methods("POST")
	api.HandleFunc("/payments/{id:[0-9]+}/status", paymentsHandler.UpdatePaymentStatus).Methods("PUT")
	api.HandleFunc("/walkers/summary", walkersHandler.Summary).Methods("GET")

	// Protected endpoints: need the caller's identity from a Bearer token
	authed := r.PathPrefix("/api").Subrouter()
	authed.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))
	authed.HandleFunc("/dogs/mine", dogsHandler.ListMyDogs).Methods("GET")
	authed.HandleFunc("/dogs", dogsHandler.CreateDog).Methods("POST")

	// Static assets, when a public dir is present
	if cfg.PublicDir != "" {
		if _, err := os.Stat(cfg.PublicDir); err == nil {
			r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.PublicDir)))
		}
	}

	return r
}
