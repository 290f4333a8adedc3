package mocks

import (
	"context"

	"github.com/metinatakli/ticket-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPriceComponentRepo struct {
	mock.Mock
	domain.PriceComponentRepository
}

func (m *MockPriceComponentRepo) Create(ctx context.Context, component *domain.PriceComponent) error {
	args := m.Called(ctx, component)
	return args.Error(0)
}

func (m *MockPriceComponentRepo) GetByName(ctx context.Context, name string) (*domain.PriceComponent, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceComponent), args.Error(1)
}

func (m *MockPriceComponentRepo) Attach(ctx context.Context, attachment domain.Attachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockPriceComponentRepo) SumForMovie(ctx context.Context, title string) (int64, error) {
	args := m.Called(ctx, title)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPriceComponentRepo) SumForRoom(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPriceComponentRepo) SumForScreening(ctx context.Context, key domain.ScreeningKey) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}
