package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Product(t *testing.T) {
	products := []entities.Product{
		{"id": float64(1), "slug": "madhubani-fish", "name": "Fish"},
		{"id": "peacock", "name": "Peacock"},
	}

	testCases := []struct {
		name     string
		slug     string
		wantName string
		wantErr  error
	}{
		{name: "by slug", slug: "madhubani-fish", wantName: "Fish"},
		{name: "by string id", slug: "peacock", wantName: "Peacock"},
		{name: "numeric id is not a slug", slug: "1", wantErr: entities.ErrProductNotFound},
		{name: "unknown", slug: "tiger", wantErr: entities.ErrProductNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalogRepo := mocks.NewMockCatalogRepo(t)
			catalogRepo.EXPECT().Products(mock.Anything).Return(products).Once()
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			svc := service.NewCatalogService(logger, catalogRepo)

			got, err := svc.Product(context.Background(), tc.slug)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, got["name"])
		})
	}
}

func TestCatalogService_Lists(t *testing.T) {
	catalogRepo := mocks.NewMockCatalogRepo(t)
	catalogRepo.EXPECT().Products(mock.Anything).Return([]entities.Product{{"slug": "a"}}).Once()
	catalogRepo.EXPECT().Partners(mock.Anything).Return([]entities.Partner{{"name": "Janakpur Women's Art"}}).Once()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := service.NewCatalogService(logger, catalogRepo)

	assert.Len(t, svc.Products(context.Background()), 1)
	assert.Equal(t, "Janakpur Women's Art", svc.Partners(context.Background())[0]["name"])
}
