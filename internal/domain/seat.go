package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Seat is a (row, column) coordinate inside a room. Raw keeps the token as the
// customer typed it so malformed input can be echoed back.
type Seat struct {
	Row int
	Col int
	Raw string
}

func (s Seat) String() string {
	if s.Raw != "" {
		return s.Raw
	}

	return fmt.Sprintf("%d,%d", s.Row, s.Col)
}

func (s Seat) Display() string {
	return "(" + s.String() + ")"
}

func (s Seat) Valid() bool {
	return s.Row >= 0 && s.Col >= 0
}

func (s Seat) InRoom(room *Room) bool {
	return s.Valid() && s.Row <= room.Rows && s.Col <= room.Columns
}

func (s Seat) key() string {
	return fmt.Sprintf("%d,%d", s.Row, s.Col)
}

// SeatSeparator separates the tokens of a seat list. Other whitespace is part of a token.
const SeatSeparator = " "

// ParseSeats splits a space separated seat list ("5,5 5,6") into seats, in list order.
// Row and column are general integers. A token that is not "<int>,<int>" yields a seat
// with negative coordinates so the bounds check rejects it by name.
func ParseSeats(seats string) []Seat {
	tokens := strings.Split(seats, SeatSeparator)
	parsed := make([]Seat, 0, len(tokens))

	for _, token := range tokens {
		if token == "" {
			continue
		}

		parsed = append(parsed, parseSeat(token))
	}

	return parsed
}

func parseSeat(token string) Seat {
	invalid := Seat{Row: -1, Col: -1, Raw: token}

	rowPart, colPart, ok := strings.Cut(token, ",")
	if !ok {
		return invalid
	}

	row, err := strconv.Atoi(rowPart)
	if err != nil {
		return invalid
	}

	col, err := strconv.Atoi(colPart)
	if err != nil {
		return invalid
	}

	return Seat{Row: row, Col: col, Raw: token}
}

// FormatSeats renders seats in the space separated wire form.
func FormatSeats(seats []Seat) string {
	parts := make([]string, len(seats))
	for i, s := range seats {
		parts[i] = s.String()
	}

	return strings.Join(parts, SeatSeparator)
}

// DisplaySeats renders seats as "(5,5), (5,6)".
func DisplaySeats(seats []Seat) string {
	parts := make([]string, len(seats))
	for i, s := range seats {
		parts[i] = s.Display()
	}

	return strings.Join(parts, ", ")
}

// SeatSet is a lookup of occupied coordinates.
type SeatSet map[string]struct{}

func NewSeatSet(seats ...Seat) SeatSet {
	set := make(SeatSet, len(seats))
	set.Add(seats...)

	return set
}

func (s SeatSet) Add(seats ...Seat) {
	for _, seat := range seats {
		s[seat.key()] = struct{}{}
	}
}

func (s SeatSet) Contains(seat Seat) bool {
	_, ok := s[seat.key()]
	return ok
}
