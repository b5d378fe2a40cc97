package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/inspection_data/internal/domain"
)

type InspectionDataService struct {
	log      *slog.Logger
	provider InspectionDataProvider
	resolver URIResolver
}

// NewInspectionDataService accepts a nil resolver, in which case stored URIs
// are returned unchanged.
func NewInspectionDataService(
	log *slog.Logger,
	provider InspectionDataProvider,
	resolver URIResolver,
) *InspectionDataService {
	return &InspectionDataService{
		log:      log,
		provider: provider,
		resolver: resolver,
	}
}

func (s *InspectionDataService) GetInspectionData(
	ctx context.Context,
	params domain.QueryParameters,
) (*domain.PagedList[*domain.InspectionData], error) {
	items, total, err := s.provider.Query(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to query inspection data: %w", err)
	}

	for _, item := range items {
		s.resolve(ctx, item)
	}

	s.log.DebugContext(ctx, "queried inspection data",
		slog.Uint64("page", params.PageNumber),
		slog.Uint64("page_size", params.PageSize),
		slog.Int("total", total),
	)

	return domain.NewPagedList(items, total, params.PageNumber, params.PageSize), nil
}

func (s *InspectionDataService) ReadByID(ctx context.Context, id string) (*domain.InspectionData, error) {
	item, err := s.provider.ByID(ctx, id)
	if err != nil {
		return nil, readError("id", id, err)
	}

	s.resolve(ctx, item)

	return item, nil
}

func (s *InspectionDataService) ReadByInspectionID(ctx context.Context, inspectionID string) (*domain.InspectionData, error) {
	item, err := s.provider.ByInspectionID(ctx, inspectionID)
	if err != nil {
		return nil, readError("inspection id", inspectionID, err)
	}

	s.resolve(ctx, item)

	return item, nil
}

// resolve swaps the anonymized uri of a finished record for a download link.
// On failure the stored uri is kept and the read still succeeds.
func (s *InspectionDataService) resolve(ctx context.Context, item *domain.InspectionData) {
	if s.resolver == nil || item.AnonymizedURI == nil ||
		item.AnonymizerWorkflowStatus != domain.WorkflowStatusExitSuccess {
		return
	}

	uri, err := s.resolver.ResolveURI(ctx, *item.AnonymizedURI)
	if err != nil {
		s.log.WarnContext(ctx, "failed to resolve anonymized uri, serving stored uri",
			slog.String("inspection_id", item.InspectionID),
			slog.String("err", err.Error()),
		)
		return
	}

	item.AnonymizedURI = &uri
}

func readError(key, value string, err error) error {
	if errors.Is(err, domain.ErrInspectionDataNotFound) {
		return err
	}

	return fmt.Errorf("failed to read inspection data by %s %q: %w", key, value, err)
}
