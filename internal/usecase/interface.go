package usecase

import (
	"context"

	"sales-analytics/internal/domain"
)

// SalesRepository reads raw sales lines and persists enriched transactions.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type SalesRepository interface {
	ReadSalesLines(ctx context.Context, path string) ([]string, error)
	SaveEnrichedTransactions(ctx context.Context, path string, rows []domain.EnrichedTransaction) error
}

// ProductCatalog fetches product metadata from an external source.
type ProductCatalog interface {
	FetchProducts(ctx context.Context) ([]domain.APIProduct, error)
}
