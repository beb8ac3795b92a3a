package server

import (
	"net/http"

	"github.com/medscan/medscan/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	*config.Config

	handler *Handler
}

func New(cfg *config.Config) (*Server, error) {
	handler, err := NewHandler(cfg)

	if err != nil {
		return nil, err
	}

	return &Server{
		Config: cfg,

		handler: handler,
	}, nil
}

func (s *Server) ListenAndServe() error {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"*"},
	}))

	s.handler.Attach(r)

	return http.ListenAndServe(s.Address, r)
}
