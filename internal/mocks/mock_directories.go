package mocks

import (
	"context"

	"github.com/metinatakli/ticket-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockRoomDirectory struct {
	mock.Mock
}

func (m *MockRoomDirectory) GetRoomByName(ctx context.Context, name string) (*domain.Room, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type MockScreeningDirectory struct {
	mock.Mock
}

func (m *MockScreeningDirectory) GetScreeningByKey(ctx context.Context, key domain.ScreeningKey) (*domain.Screening, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Screening), args.Error(1)
}

type MockPriceLookup struct {
	mock.Mock
}

func (m *MockPriceLookup) ForMovie(ctx context.Context, title string) (int64, error) {
	args := m.Called(ctx, title)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPriceLookup) ForRoom(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPriceLookup) ForScreening(ctx context.Context, key domain.ScreeningKey) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}
