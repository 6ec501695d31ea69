package rest

import (
	"context"
	"net"
	"net/http"

	core_port "github.com/VanSingco/realstate-api/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(host, port string,
	allowedOrigins []string,
	searchHandler *SearchHandler,
	infoHandler *GetInfoHandler,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		// How long a browser may cache the preflight result, in seconds.
		MaxAge: 300,
	}))

	r.Get("/", infoHandler.GetServiceInfo)
	r.Get("/health", infoHandler.GetHealth)

	r.Route("/properties", func(r chi.Router) {
		r.Get("/search", searchHandler.SearchPropertiesByQuery)
		r.Post("/search", searchHandler.SearchPropertiesByBody)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    net.JoinHostPort(host, port),
			Handler: r,
		},
		logger: baseLogger,
	}
}

// Handler exposes the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
