package mocks

import (
	"context"

	"github.com/metinatakli/ticket-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockScreeningRepo struct {
	mock.Mock
	domain.ScreeningRepository
}

func (m *MockScreeningRepo) Create(ctx context.Context, screening *domain.Screening) error {
	args := m.Called(ctx, screening)
	return args.Error(0)
}

func (m *MockScreeningRepo) Delete(ctx context.Context, key domain.ScreeningKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockScreeningRepo) GetAll(ctx context.Context) ([]domain.Screening, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Screening), args.Error(1)
}

func (m *MockScreeningRepo) GetAllByRoom(ctx context.Context, roomName string) ([]domain.Screening, error) {
	args := m.Called(ctx, roomName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Screening), args.Error(1)
}

func (m *MockScreeningRepo) GetByKey(ctx context.Context, key domain.ScreeningKey) (*domain.Screening, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Screening), args.Error(1)
}
