// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/elfaka/site/cliparse"
	"github.com/elfaka/site/handlers"
	"github.com/elfaka/site/middleware"
)

// Clients are the upstream APIs the handlers call.
type Clients struct {
	Forms   handlers.FormsClient
	LostArk handlers.CharacterClient
}

// NewRouter wires every route and wraps the result in the request ID,
// logging and CORS middleware.
func NewRouter(db *sql.DB, cfg cliparse.Config, clients Clients) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(db, cfg)
	formsHandler := handlers.NewFormsHandler(db, cfg, clients.Forms)
	lostArkHandler := handlers.NewLostArkHandler(cfg, clients.LostArk)
	jsonHandler := handlers.NewJSONFormatHandler()
	postHandler := handlers.NewPostHandler(db, cfg)

	// Health check
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.HandleFunc("/api/ping", healthHandler.Ping).Methods("GET")

	// Lost Ark proxy
	r.HandleFunc("/api/lostark/character-info", lostArkHandler.CharacterInfo).Methods("GET")

	// Session management
	r.HandleFunc("/api/auth/me", authHandler.Me).Methods("GET")
	r.HandleFunc("/api/auth/session", authHandler.CreateSession).Methods("POST")
	r.HandleFunc("/api/auth/logout", authHandler.Logout).Methods("POST")

	// Google Forms (signed-in only)
	r.HandleFunc("/api/forms", formsHandler.List).Methods("GET")
	r.HandleFunc("/api/forms/{formId}", formsHandler.Detail).Methods("GET")
	r.HandleFunc("/api/forms/{formId}/responses", formsHandler.Responses).Methods("GET")
	r.HandleFunc("/api/forms/{formId}/analyze", formsHandler.Analyze).Methods("GET")
	r.HandleFunc("/api/forms/{formId}/report", formsHandler.Report).Methods("GET")

	// JSON formatter
	r.HandleFunc("/api/json/format", jsonHandler.Format).Methods("POST")

	// PS posts
	r.HandleFunc("/api/posts", postHandler.ListPosts).Methods("GET")
	r.HandleFunc("/api/posts", postHandler.CreatePost).Methods("POST")
	r.HandleFunc("/api/posts/{id:[0-9]+}", postHandler.GetPost).Methods("GET")
	r.HandleFunc("/api/posts/{id:[0-9]+}", postHandler.UpdatePost).Methods("PUT")
	r.HandleFunc("/api/posts/{id:[0-9]+}", postHandler.DeletePost).Methods("DELETE")

	// Frontend
	r.PathPrefix("/").Handler(handlers.NewSPAHandler(cfg.StaticDir)).Methods("GET", "HEAD")

	return middleware.RequestID(middleware.WithLogging(middleware.CORS(cfg.AllowedOrigin)(r)))
}
