package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"radioapp/cmd/app"
	"radioapp/internal/config"
	handlers "radioapp/internal/handler"
	"radioapp/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg, db.HealthCheck)

	// per-route auth policy: public, authenticated, or authenticated+admin
	auth := middleware.Authenticate(cfg)
	authed := func(h http.HandlerFunc) http.Handler { return auth(h) }
	adminOnly := func(h http.HandlerFunc) http.Handler { return auth(middleware.AdminOnly(h)) }

	limiter := middleware.NewRateLimiter(time.Minute, 20)
	limited := middleware.RateLimit(limiter)

	r := mux.NewRouter()
	r.HandleFunc("/", handlers.HomeHandler).Methods("GET")
	r.HandleFunc("/health", handler.HealthHandler).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// users
	api.Handle("/users/register", limited(http.HandlerFunc(handler.Register))).Methods("POST")
	api.Handle("/users/login", limited(http.HandlerFunc(handler.Login))).Methods("POST")
	api.Handle("/users/request-reset-password", limited(http.HandlerFunc(handler.RequestPasswordReset))).Methods("POST")
	api.Handle("/users/reset-password", limited(http.HandlerFunc(handler.ResetPassword))).Methods("POST")
	api.Handle("/users", authed(handler.GetUsers)).Methods("GET")
	api.Handle("/users/search/{name}", authed(handler.SearchUsers)).Methods("GET")
	api.Handle("/users/{id:[0-9]+}", authed(handler.GetUser)).Methods("GET")
	api.Handle("/users/{id:[0-9]+}", authed(handler.UpdateUser)).Methods("PUT")
	api.Handle("/users/{id:[0-9]+}", authed(handler.DeleteUser)).Methods("DELETE")

	// programs
	api.Handle("/programs", authed(handler.GetPrograms)).Methods("GET")
	api.Handle("/programs/{id:[0-9]+}", authed(handler.GetProgram)).Methods("GET")
	api.Handle("/programs", adminOnly(handler.CreateProgram)).Methods("POST")
	api.Handle("/programs/{id:[0-9]+}", adminOnly(handler.UpdateProgram)).Methods("PUT")
	api.Handle("/programs/{id:[0-9]+}", adminOnly(handler.DeleteProgram)).Methods("DELETE")

	// publications
	api.HandleFunc("/publications", handler.GetPublications).Methods("GET")
	api.HandleFunc("/publications/{id:[0-9]+}", handler.GetPublication).Methods("GET")
	api.Handle("/publications", adminOnly(handler.CreatePublication)).Methods("POST")
	api.Handle("/publications/{id:[0-9]+}", adminOnly(handler.UpdatePublication)).Methods("PUT")
	api.Handle("/publications/{id:[0-9]+}", adminOnly(handler.DeletePublication)).Methods("DELETE")
	api.Handle("/publications/programs/{programId:[0-9]+}/publications", authed(handler.GetProgramPublications)).Methods("GET")

	// comments
	api.Handle("/comments", authed(handler.AddComment)).Methods("POST")
	api.Handle("/comments/{id:[0-9]+}", authed(handler.GetComments)).Methods("GET")
	api.Handle("/comments/{id:[0-9]+}", authed(handler.EditComment)).Methods("PUT")
	api.Handle("/comments/{id:[0-9]+}", authed(handler.DeleteComment)).Methods("DELETE")

	// reactions
	api.Handle("/reactions", authed(handler.AddReaction)).Methods("POST")
	api.Handle("/reactions", authed(handler.RemoveReaction)).Methods("DELETE")

	// protected probes
	api.Handle("/protected/resource", authed(handler.ProtectedResource)).Methods("GET")
	api.Handle("/protected/admin/resource", adminOnly(handler.AdminResource)).Methods("GET")

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware(cfg.CORSOrigin),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)
	log.Printf("Database: %s", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
