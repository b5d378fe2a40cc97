package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/inspection_data/internal/config"
	"github.com/kurochkinivan/inspection_data/internal/domain"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HTTP, log *slog.Logger, service InspectionDataService, authorizer Authorizer) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(log, service, authorizer),
		},
	}
}

func NewRouter(log *slog.Logger, service InspectionDataService, authorizer Authorizer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := NewInspectionDataHandler(log, service)
	r.Route("/InspectionData", func(r chi.Router) {
		r.Use(Authorize(log, authorizer, domain.AnyRole...))

		r.Get("/", h.GetAllInspectionData)
		r.Get("/id/{id}", h.GetInspectionDataByID)
		r.Get("/{inspection_id}", h.GetInspectionDataByInspectionID)
		r.Get("/{inspection_id}/inspection-data-storage-location", h.GetInspectionDataStorageLocation)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
