package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"wecomment/internal/handler"
	"wecomment/internal/transport/http/middleware"
)

// RouterConfig bundles everything the router wires together.
type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	VideoHandler   *handler.VideoHandler
	CommentHandler *handler.CommentHandler
	VoteHandler    *handler.VoteHandler
	JWTSecret      string
	CORSOrigins    string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth/google", func(r chi.Router) {
		r.Get("/start", cfg.AuthHandler.GoogleStart)
		r.Get("/callback", cfg.AuthHandler.GoogleCallback)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/videos", cfg.VideoHandler.List)
		r.Get("/videos/{youtubeVideoID}", cfg.VideoHandler.Get)

		r.With(middleware.OptionalAuthMiddleware(cfg.JWTSecret)).
			Get("/videos/{youtubeVideoID}/comments", cfg.CommentHandler.List)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.JWTSecret))

			r.Get("/me", cfg.AuthHandler.Me)
			r.Post("/videos/{youtubeVideoID}/comments", cfg.CommentHandler.Create)
			r.Post("/comments/{commentID}/vote", cfg.VoteHandler.Toggle)
		})
	})

	return r
}
