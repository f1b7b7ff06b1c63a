// Package inventory tracks seat occupancy for every flight type.
//
// Seats are allocated in two phases: a bounded number of uniform random
// draws within the class range, then a linear scan from the start of the
// range. The scan guarantees that allocation succeeds whenever any seat of
// the class is free.
package inventory

import (
	"fmt"
	"math/rand/v2"

	"github.com/Domenick1991/ticketoffice/internal/domain"
	"github.com/samber/lo"
)

const DefaultRandomAttempts = 1000

type Inventory struct {
	occupied map[domain.FlightType]*[domain.MaxSeat + 1]bool
	attempts int
	rnd      *rand.Rand
}

type Option func(*Inventory)

// WithRandomAttempts bounds the random phase. Zero skips straight to the scan.
func WithRandomAttempts(n int) Option {
	return func(i *Inventory) {
		if n >= 0 {
			i.attempts = n
		}
	}
}

func WithRand(r *rand.Rand) Option {
	return func(i *Inventory) {
		i.rnd = r
	}
}

func New(opts ...Option) *Inventory {
	inv := &Inventory{
		occupied: make(map[domain.FlightType]*[domain.MaxSeat + 1]bool, len(domain.FlightTypes)),
		attempts: DefaultRandomAttempts,
		rnd:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, ft := range domain.FlightTypes {
		inv.occupied[ft] = new([domain.MaxSeat + 1]bool)
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Allocate picks a free seat of the given class and marks it occupied.
func (i *Inventory) Allocate(ft domain.FlightType, class domain.TicketClass) (int, error) {
	table, err := i.table(ft)
	if err != nil {
		return 0, err
	}
	if !class.Valid() {
		return 0, fmt.Errorf("%w: %d", domain.ErrUnknownTicketClass, class)
	}

	seats := class.Seats()
	if i.FreeCount(ft, class) == 0 {
		return 0, fmt.Errorf("%w: flight %s, %s", domain.ErrNoSeatAvailable, ft.Code(), class)
	}

	for attempt := 0; attempt < i.attempts; attempt++ {
		seat := seats.Start + i.rnd.IntN(seats.Len())
		if !table[seat] {
			table[seat] = true
			return seat, nil
		}
	}

	for seat := seats.Start; seat <= seats.End; seat++ {
		if !table[seat] {
			table[seat] = true
			return seat, nil
		}
	}
	return 0, fmt.Errorf("%w: flight %s, %s", domain.ErrNoSeatAvailable, ft.Code(), class)
}

// Occupy marks a specific seat as taken.
func (i *Inventory) Occupy(ft domain.FlightType, seat int) error {
	table, err := i.table(ft)
	if err != nil {
		return err
	}
	if seat < domain.MinSeat || seat > domain.MaxSeat {
		return fmt.Errorf("%w: seat %d", domain.ErrSeatUnavailable, seat)
	}
	if table[seat] {
		return fmt.Errorf("%w: seat %d", domain.ErrSeatUnavailable, seat)
	}
	table[seat] = true
	return nil
}

// Release frees a seat. Unknown flight types, out of range seats and seats
// that are already free are ignored.
func (i *Inventory) Release(ft domain.FlightType, seat int) {
	table, err := i.table(ft)
	if err != nil || seat < domain.MinSeat || seat > domain.MaxSeat {
		return
	}
	table[seat] = false
}

func (i *Inventory) IsOccupied(ft domain.FlightType, seat int) bool {
	table, err := i.table(ft)
	if err != nil || seat < domain.MinSeat || seat > domain.MaxSeat {
		return false
	}
	return table[seat]
}

// Available lists the free seats of a class in ascending order.
func (i *Inventory) Available(ft domain.FlightType, class domain.TicketClass) []int {
	table, err := i.table(ft)
	if err != nil || !class.Valid() {
		return nil
	}
	seats := class.Seats()
	return lo.Filter(lo.RangeFrom(seats.Start, seats.Len()), func(seat int, _ int) bool {
		return !table[seat]
	})
}

func (i *Inventory) FreeCount(ft domain.FlightType, class domain.TicketClass) int {
	return len(i.Available(ft, class))
}

func (i *Inventory) table(ft domain.FlightType) (*[domain.MaxSeat + 1]bool, error) {
	table, ok := i.occupied[ft]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownFlightType, ft)
	}
	return table, nil
}
