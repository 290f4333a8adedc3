package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/metinatakli/ticket-service/internal/domain"
)

// Service owns movies, rooms, screenings and price components, and exposes the
// read accessors the booking engine prices and validates against.
type Service struct {
	logger          *slog.Logger
	movies          domain.MovieRepository
	rooms           domain.RoomRepository
	screenings      domain.ScreeningRepository
	priceComponents domain.PriceComponentRepository
}

func NewService(
	logger *slog.Logger,
	movies domain.MovieRepository,
	rooms domain.RoomRepository,
	screenings domain.ScreeningRepository,
	priceComponents domain.PriceComponentRepository) *Service {

	return &Service{
		logger:          logger,
		movies:          movies,
		rooms:           rooms,
		screenings:      screenings,
		priceComponents: priceComponents,
	}
}

func (s *Service) CreateMovie(ctx context.Context, movie *domain.Movie) error {
	return s.movies.Create(ctx, movie)
}

func (s *Service) UpdateMovie(ctx context.Context, movie *domain.Movie) error {
	return notFoundAs(s.movies.Update(ctx, movie), domain.ErrMovieNotFound)
}

func (s *Service) DeleteMovie(ctx context.Context, title string) error {
	return notFoundAs(s.movies.Delete(ctx, title), domain.ErrMovieNotFound)
}

func (s *Service) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	return s.movies.GetAll(ctx)
}

func (s *Service) CreateRoom(ctx context.Context, room *domain.Room) error {
	return s.rooms.Create(ctx, room)
}

func (s *Service) UpdateRoom(ctx context.Context, room *domain.Room) error {
	return notFoundAs(s.rooms.Update(ctx, room), domain.ErrRoomNotFound)
}

func (s *Service) DeleteRoom(ctx context.Context, name string) error {
	return notFoundAs(s.rooms.Delete(ctx, name), domain.ErrRoomNotFound)
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.GetAll(ctx)
}

func (s *Service) GetRoomByName(ctx context.Context, name string) (*domain.Room, error) {
	return s.rooms.GetByName(ctx, name)
}

func (s *Service) GetScreeningByKey(ctx context.Context, key domain.ScreeningKey) (*domain.Screening, error) {
	return s.screenings.GetByKey(ctx, key)
}

func (s *Service) DeleteScreening(ctx context.Context, key domain.ScreeningKey) error {
	return notFoundAs(s.screenings.Delete(ctx, key), domain.ErrScreeningNotFound)
}

func (s *Service) ListScreenings(ctx context.Context) ([]domain.Screening, error) {
	return s.screenings.GetAll(ctx)
}

func notFoundAs(err, target error) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return target
	}

	return err
}
