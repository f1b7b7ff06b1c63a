package flights

import (
	"context"
	"fmt"

	"github.com/Domenick1991/ticketoffice/internal/domain"
)

type FlightUseCase interface {
	List(ctx context.Context) []domain.Flight
	Get(ctx context.Context, ft domain.FlightType) (domain.Flight, error)
}

// SeatSource reports free seats for a flight partition.
type SeatSource interface {
	AvailableSeats(ctx context.Context, ft domain.FlightType, class domain.TicketClass) []int
}

type FlightService struct {
	seats SeatSource
}

func NewFlightService(seats SeatSource) *FlightService {
	return &FlightService{seats: seats}
}

func (s *FlightService) List(ctx context.Context) []domain.Flight {
	flights := make([]domain.Flight, 0, len(domain.FlightTypes))
	for _, ft := range domain.FlightTypes {
		flights = append(flights, s.flight(ctx, ft))
	}
	return flights
}

func (s *FlightService) Get(ctx context.Context, ft domain.FlightType) (domain.Flight, error) {
	if !ft.Valid() {
		return domain.Flight{}, fmt.Errorf("%w: %d", domain.ErrUnknownFlightType, ft)
	}
	return s.flight(ctx, ft), nil
}

func (s *FlightService) flight(ctx context.Context, ft domain.FlightType) domain.Flight {
	return domain.Flight{
		Type:        ft,
		Route:       ft.Route(),
		FreeFirst:   len(s.seats.AvailableSeats(ctx, ft, domain.ClassFirst)),
		FreeEconomy: len(s.seats.AvailableSeats(ctx, ft, domain.ClassEconomy)),
	}
}

var _ FlightUseCase = (*FlightService)(nil)
