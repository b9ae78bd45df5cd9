package service

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"go.opentelemetry.io/otel/attribute"
)

type CatalogRepo interface {
	Products(ctx context.Context) []entities.Product
	Partners(ctx context.Context) []entities.Partner
}

type catalogService struct {
	logger *slog.Logger
	repo   CatalogRepo
}

func NewCatalogService(logger *slog.Logger, repo CatalogRepo) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		repo:   repo,
	}
}

func (s *catalogService) Products(ctx context.Context) []entities.Product {
	ctx, span := tracer.Start(ctx, "CatalogService.Products")
	defer span.End()

	return s.repo.Products(ctx)
}

// Product finds a product by its slug, or by its id when the slug is absent.
func (s *catalogService) Product(ctx context.Context, slug string) (entities.Product, error) {
	ctx, span := tracer.Start(ctx, "CatalogService.Product")
	defer span.End()
	span.SetAttributes(attribute.String("product.slug", slug))

	for _, p := range s.repo.Products(ctx) {
		if p.Matches(slug) {
			return p, nil
		}
	}
	s.logger.DebugContext(ctx, "product not found", slog.String("slug", slug))
	return nil, entities.ErrProductNotFound
}

func (s *catalogService) Partners(ctx context.Context) []entities.Partner {
	ctx, span := tracer.Start(ctx, "CatalogService.Partners")
	defer span.End()

	return s.repo.Partners(ctx)
}
