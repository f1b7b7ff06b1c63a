package domain

type Gender byte

const (
	GenderFemale Gender = 'F'
	GenderMale   Gender = 'M'
	GenderOther  Gender = 'O'
)

func (g Gender) Valid() bool {
	return g == GenderFemale || g == GenderMale || g == GenderOther
}

func (g Gender) String() string {
	return string(g)
}

// PassengerDetails are the fields an operator may change after booking.
type PassengerDetails struct {
	FirstName string
	LastName  string
	Phone     string
	BirthDate Date
	Gender    Gender
}

type Passenger struct {
	TicketID   string
	FlightType FlightType
	FlightCode string
	Document   string
	PassengerDetails
	TicketClass   TicketClass
	FlightDate    Date
	DepartureTime TimeOfDay
	ArrivalDate   Date
	ArrivalTime   TimeOfDay
	SeatNumber    int
}

// BoardingPass is the data printed at the gate.
type BoardingPass struct {
	TicketID      string
	FlightType    FlightType
	FlightCode    string
	Document      string
	FirstName     string
	LastName      string
	TicketClass   TicketClass
	FlightDate    Date
	DepartureTime TimeOfDay
	ArrivalDate   Date
	ArrivalTime   TimeOfDay
	SeatNumber    int
}

func (p Passenger) BoardingPass() BoardingPass {
	return BoardingPass{
		TicketID:      p.TicketID,
		FlightType:    p.FlightType,
		FlightCode:    p.FlightCode,
		Document:      p.Document,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		TicketClass:   p.TicketClass,
		FlightDate:    p.FlightDate,
		DepartureTime: p.DepartureTime,
		ArrivalDate:   p.ArrivalDate,
		ArrivalTime:   p.ArrivalTime,
		SeatNumber:    p.SeatNumber,
	}
}
