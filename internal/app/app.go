package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/inspection_data/internal/auth"
	"github.com/kurochkinivan/inspection_data/internal/config"
	v1 "github.com/kurochkinivan/inspection_data/internal/controller/http/v1"
	"github.com/kurochkinivan/inspection_data/internal/repository/postgresql"
	"github.com/kurochkinivan/inspection_data/internal/service"
	"github.com/kurochkinivan/inspection_data/internal/storage/minio"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	verifier, err := auth.NewVerifier(a.cfg.Auth.Secret)
	if err != nil {
		return fmt.Errorf("failed to create token verifier: %w", err)
	}

	resolver, err := a.uriResolver(ctx)
	if err != nil {
		return err
	}

	repository := postgresql.NewInspectionDataRepository(pool)
	inspectionData := service.NewInspectionDataService(a.log, repository, resolver)
	server := v1.NewServer(a.cfg.HTTP, a.log, inspectionData, verifier)

	return a.serve(ctx, server)
}

// uriResolver returns a nil interface, not a typed nil, when storage is not configured.
func (a *App) uriResolver(ctx context.Context) (service.URIResolver, error) {
	if a.cfg.Storage.Endpoint == "" {
		a.log.WarnContext(ctx, "storage endpoint is not set, anonymized uris are served as stored")
		return nil, nil
	}

	presigner, err := minio.NewPresigner(a.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create presigner: %w", err)
	}

	a.log.InfoContext(ctx, "presigning anonymized uris",
		slog.String("storage_endpoint", a.cfg.Storage.Endpoint),
		slog.Duration("link_ttl", a.cfg.Storage.LinkTTL),
	)

	return presigner, nil
}

func (a *App) serve(ctx context.Context, server *v1.Server) error {
	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "server stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "server stopped gracefully")

	return nil
}
