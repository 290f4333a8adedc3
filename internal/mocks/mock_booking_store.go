package mocks

import (
	"context"

	"github.com/metinatakli/ticket-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingStore struct {
	mock.Mock
	domain.BookingStore
}

func (m *MockBookingStore) Insert(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingStore) FindByUser(ctx context.Context, username string) ([]domain.Booking, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingStore) FindByScreening(ctx context.Context, key domain.ScreeningKey) ([]domain.Booking, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockBookingPublisher struct {
	mock.Mock
}

func (m *MockBookingPublisher) PublishBookingConfirmed(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
