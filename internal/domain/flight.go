package domain

import "time"

type FlightType int

const (
	FlightNational FlightType = iota
	FlightInternational
)

// FlightTypes lists every flight type in catalog order.
var FlightTypes = []FlightType{FlightNational, FlightInternational}

func (t FlightType) Valid() bool {
	return t == FlightNational || t == FlightInternational
}

// Route describes the fixed itinerary flown by a flight type. TimezoneShift
// is added to the departure instant together with Duration to obtain the
// arrival wall-clock time at the destination.
type Route struct {
	Code          string
	Label         string
	FromCity      string
	ToCity        string
	Duration      time.Duration
	TimezoneShift time.Duration
}

var routes = map[FlightType]Route{
	FlightNational: {
		Code:     "GOPLA01",
		Label:    "01",
		FromCity: "Pereira",
		ToCity:   "Bogotá",
		Duration: 50 * time.Minute,
	},
	FlightInternational: {
		Code:          "GOPLA02",
		Label:         "02",
		FromCity:      "Bogotá",
		ToCity:        "Madrid",
		Duration:      11 * time.Hour,
		TimezoneShift: 7 * time.Hour,
	},
}

func (t FlightType) Route() Route {
	return routes[t]
}

func (t FlightType) Code() string {
	return routes[t].Code
}

func (t FlightType) String() string {
	return routes[t].Label
}

type TicketClass int

const (
	ClassFirst TicketClass = iota
	ClassEconomy
)

const (
	MinSeat = 1
	MaxSeat = 250
)

// SeatRange is an inclusive seat number interval.
type SeatRange struct {
	Start int
	End   int
}

func (r SeatRange) Contains(seat int) bool {
	return seat >= r.Start && seat <= r.End
}

func (r SeatRange) Len() int {
	return r.End - r.Start + 1
}

func (c TicketClass) Valid() bool {
	return c == ClassFirst || c == ClassEconomy
}

func (c TicketClass) Seats() SeatRange {
	if c == ClassFirst {
		return SeatRange{Start: 1, End: 20}
	}
	return SeatRange{Start: 21, End: MaxSeat}
}

func (c TicketClass) String() string {
	if c == ClassFirst {
		return "Primera Clase"
	}
	return "Clase Económica"
}

// Flight is a catalog entry with current free seats per class.
type Flight struct {
	Type        FlightType
	Route       Route
	FreeFirst   int
	FreeEconomy int
}
