// Package events publishes booking events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/metinatakli/ticket-service/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultExchange            = "bookings"
	BookingConfirmedRoutingKey = "booking.confirmed"
)

type BookingConfirmedEvent struct {
	ID           string    `json:"id"`
	MovieTitle   string    `json:"movieTitle"`
	RoomName     string    `json:"roomName"`
	StartingTime string    `json:"startingTime"`
	Seats        string    `json:"seats"`
	Username     string    `json:"username"`
	Price        int64     `json:"price"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewBookingConfirmedEvent(b *domain.Booking) BookingConfirmedEvent {
	return BookingConfirmedEvent{
		ID:           b.ID,
		MovieTitle:   b.MovieTitle,
		RoomName:     b.RoomName,
		StartingTime: b.StartingTime,
		Seats:        domain.FormatSeats(b.Seats),
		Username:     b.Username,
		Price:        b.Price,
		Currency:     domain.Currency,
		CreatedAt:    b.CreatedAt,
	}
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
}

// NewPublisher dials the broker and declares a durable topic exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *Publisher) PublishBookingConfirmed(ctx context.Context, booking *domain.Booking) error {
	body, err := json.Marshal(NewBookingConfirmedEvent(booking))
	if err != nil {
		return err
	}

	return p.ch.PublishWithContext(ctx, p.exchange, BookingConfirmedRoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    booking.ID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}

	if p.conn != nil {
		return p.conn.Close()
	}

	return nil
}

// NopPublisher drops events. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishBookingConfirmed(context.Context, *domain.Booking) error {
	return nil
}
