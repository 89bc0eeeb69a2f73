package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Calphius18/service-provider/internal/catalog"
	"github.com/Calphius18/service-provider/internal/session"
)

// BookingService builds booking drafts, submits them, and records the
// server-confirmed result for the session.
type BookingService struct {
	API    MarketplaceAPI
	Store  *session.Store
	UserID int64 // authenticated principal, injected from config
	Log    *zap.Logger
}

// Book derives a draft from the provider, date-time, and hour count, then
// submits it. Invalid input fails before any network call. On submission
// failure the draft is discarded and nothing is appended to the session;
// a booking is either confirmed by the server or not created at all.
func (s *BookingService) Book(ctx context.Context, p catalog.Provider, when time.Time, hours int) (catalog.Booking, error) {
	draft, err := catalog.BuildDraft(p, when, hours, s.UserID)
	if err != nil {
		return catalog.Booking{}, err
	}

	confirmed, err := s.API.CreateBooking(ctx, draft)
	if err != nil {
		s.logger().Warn("booking submission failed",
			zap.Int64("provider_id", p.ID),
			zap.Error(err))
		return catalog.Booking{}, err
	}

	s.Store.AddBooking(confirmed)
	s.logger().Info("booking confirmed",
		zap.Int64("booking_id", confirmed.ID),
		zap.Int64("provider_id", confirmed.ProviderID),
		zap.Float64("total_cost", confirmed.TotalCost))
	return confirmed, nil
}

// History fetches the caller's bookings from the server.
func (s *BookingService) History(ctx context.Context) ([]catalog.Booking, error) {
	return s.API.Bookings(ctx)
}

func (s *BookingService) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
