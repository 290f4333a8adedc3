package catalog

import (
	"context"

	"github.com/metinatakli/ticket-service/internal/domain"
)

func (s *Service) CreatePriceComponent(ctx context.Context, component *domain.PriceComponent) error {
	return s.priceComponents.Create(ctx, component)
}

// AttachPriceComponent adds the component's value to the adjustment of the target
// entity. Attachments accumulate. Key fields unrelated to the target are dropped.
func (s *Service) AttachPriceComponent(ctx context.Context, attachment domain.Attachment) error {
	_, err := s.priceComponents.GetByName(ctx, attachment.ComponentName)
	if err != nil {
		return notFoundAs(err, domain.ErrPriceComponentNotFound)
	}

	switch attachment.Target {
	case domain.TargetMovie:
		attachment = domain.Attachment{
			ComponentName: attachment.ComponentName,
			Target:        attachment.Target,
			MovieTitle:    attachment.MovieTitle,
		}
		_, err = s.movies.GetByTitle(ctx, attachment.MovieTitle)
		err = notFoundAs(err, domain.ErrMovieNotFound)
	case domain.TargetRoom:
		attachment = domain.Attachment{
			ComponentName: attachment.ComponentName,
			Target:        attachment.Target,
			RoomName:      attachment.RoomName,
		}
		_, err = s.rooms.GetByName(ctx, attachment.RoomName)
		err = notFoundAs(err, domain.ErrRoomNotFound)
	case domain.TargetScreening:
		_, err = s.screenings.GetByKey(ctx, domain.ScreeningKey{
			MovieTitle:   attachment.MovieTitle,
			RoomName:     attachment.RoomName,
			StartingTime: attachment.StartingTime,
		})
		err = notFoundAs(err, domain.ErrScreeningNotFound)
	default:
		err = domain.ErrValidation
	}

	if err != nil {
		return err
	}

	err = s.priceComponents.Attach(ctx, attachment)
	if err != nil {
		return err
	}

	s.logger.Info("price component attached",
		"component", attachment.ComponentName, "target", string(attachment.Target))

	return nil
}

func (s *Service) ForMovie(ctx context.Context, title string) (int64, error) {
	_, err := s.movies.GetByTitle(ctx, title)
	if err != nil {
		return 0, err
	}

	return s.priceComponents.SumForMovie(ctx, title)
}

func (s *Service) ForRoom(ctx context.Context, name string) (int64, error) {
	_, err := s.rooms.GetByName(ctx, name)
	if err != nil {
		return 0, err
	}

	return s.priceComponents.SumForRoom(ctx, name)
}

func (s *Service) ForScreening(ctx context.Context, key domain.ScreeningKey) (int64, error) {
	_, err := s.screenings.GetByKey(ctx, key)
	if err != nil {
		return 0, err
	}

	return s.priceComponents.SumForScreening(ctx, key)
}
