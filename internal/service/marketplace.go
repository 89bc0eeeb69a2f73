package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Calphius18/service-provider/internal/catalog"
	"github.com/Calphius18/service-provider/internal/session"
)

// MarketplaceAPI defines the remote calls used by services. Implemented by
// *api.Client; faked in tests.
type MarketplaceAPI interface {
	Providers(ctx context.Context) ([]catalog.Provider, error)
	Provider(ctx context.Context, id int64) (catalog.Provider, error)
	Categories(ctx context.Context) ([]catalog.Category, error)
	CreateBooking(ctx context.Context, draft catalog.Booking) (catalog.Booking, error)
	Bookings(ctx context.Context) ([]catalog.Booking, error)
}

// CatalogService keeps the session store in sync with the marketplace.
type CatalogService struct {
	API   MarketplaceAPI
	Store *session.Store
	Log   *zap.Logger
}

// Refresh fetches providers and categories, replacing the store's provider
// collection on success. On any fetch failure the store is left untouched
// and the error propagates; the caller decides what to display.
func (s *CatalogService) Refresh(ctx context.Context) ([]catalog.Category, error) {
	providers, err := s.API.Providers(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.API.Categories(ctx)
	if err != nil {
		return nil, err
	}

	s.Store.SetProviders(providers)
	s.logger().Info("catalog refreshed",
		zap.Int("providers", len(providers)),
		zap.Int("categories", len(categories)))
	return categories, nil
}

// ProviderByID resolves a provider from the session store, falling back to
// the API on a miss. A fetched provider is merged into the store so later
// lookups hit.
func (s *CatalogService) ProviderByID(ctx context.Context, id int64) (catalog.Provider, error) {
	if p, ok := s.Store.ProviderByID(id); ok {
		return p, nil
	}
	p, err := s.API.Provider(ctx, id)
	if err != nil {
		return catalog.Provider{}, err
	}
	s.Store.MergeProvider(p)
	return p, nil
}

func (s *CatalogService) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
