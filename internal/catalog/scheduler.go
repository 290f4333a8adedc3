package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/metinatakli/ticket-service/internal/domain"
)

// BreakPeriod is the cleaning gap kept free after each screening in a room.
const BreakPeriod = 10 * time.Minute

// CreateScreening schedules a movie in a room after checking that both exist and
// that the new screening neither overlaps another screening in the room nor starts
// in the break that follows one.
func (s *Service) CreateScreening(ctx context.Context, screening *domain.Screening) error {
	movie, err := s.movies.GetByTitle(ctx, screening.MovieTitle)
	if err != nil {
		return notFoundAs(err, domain.ErrMovieNotFound)
	}

	_, err = s.rooms.GetByName(ctx, screening.RoomName)
	if err != nil {
		return notFoundAs(err, domain.ErrRoomNotFound)
	}

	start, err := screening.Start()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	existing, err := s.screenings.GetAllByRoom(ctx, screening.RoomName)
	if err != nil {
		return err
	}

	runtimes := map[string]int{movie.Title: movie.Runtime}

	for _, other := range existing {
		otherStart, err := other.Start()
		if err != nil {
			s.logger.Warn("skipping screening with unparsable starting time",
				"screening", other.ScreeningKey.String(), "error", err)
			continue
		}

		otherRuntime, err := s.runtimeOf(ctx, other.MovieTitle, runtimes)
		if err != nil {
			return err
		}

		newEnd := start.Add(minutes(movie.Runtime))

		if overlaps(otherStart, otherStart.Add(minutes(otherRuntime)), start, newEnd) {
			return domain.ErrOverlappingScreening
		}

		if overlaps(otherStart, otherStart.Add(minutes(otherRuntime)+BreakPeriod), start, newEnd) {
			return domain.ErrBreakPeriod
		}
	}

	err = s.screenings.Create(ctx, screening)
	if err != nil {
		return err
	}

	s.logger.Info("screening created", "screening", screening.ScreeningKey.String())

	return nil
}

func (s *Service) runtimeOf(ctx context.Context, title string, cache map[string]int) (int, error) {
	if runtime, ok := cache[title]; ok {
		return runtime, nil
	}

	movie, err := s.movies.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return 0, fmt.Errorf("screened movie %q is missing: %w", title, err)
		}

		return 0, err
	}

	cache[title] = movie.Runtime

	return movie.Runtime, nil
}

// overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
