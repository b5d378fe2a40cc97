package service

import (
	"context"

	"github.com/kurochkinivan/inspection_data/internal/domain"
)

type InspectionDataProvider interface {
	Query(ctx context.Context, params domain.QueryParameters) ([]*domain.InspectionData, int, error)
	ByID(ctx context.Context, id string) (*domain.InspectionData, error)
	ByInspectionID(ctx context.Context, inspectionID string) (*domain.InspectionData, error)
}

type URIResolver interface {
	ResolveURI(ctx context.Context, uri string) (string, error)
}
