package registry

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/ticketoffice/internal/domain"
	"github.com/Domenick1991/ticketoffice/internal/inventory"
	"github.com/Domenick1991/ticketoffice/internal/kafka"
	"github.com/Domenick1991/ticketoffice/internal/repository"
	"github.com/Domenick1991/ticketoffice/internal/schedule"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type RegistryUseCase interface {
	Book(ctx context.Context, input BookInput) (domain.Passenger, error)
	FindByDocument(ctx context.Context, document string) (domain.Passenger, error)
	Modify(ctx context.Context, document string, details domain.PassengerDetails) (domain.Passenger, error)
	Cancel(ctx context.Context, document string) (domain.Passenger, error)
	ChangeSeat(ctx context.Context, document string, seat int) (domain.Passenger, error)
	List(ctx context.Context) []domain.Passenger
	BoardingPass(ctx context.Context, document string) (domain.BoardingPass, error)
	AvailableSeats(ctx context.Context, ft domain.FlightType, class domain.TicketClass) []int
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type SeatInventory interface {
	Allocate(ft domain.FlightType, class domain.TicketClass) (int, error)
	Occupy(ft domain.FlightType, seat int) error
	Release(ft domain.FlightType, seat int)
	IsOccupied(ft domain.FlightType, seat int) bool
	Available(ft domain.FlightType, class domain.TicketClass) []int
}

type BookInput struct {
	FlightType    domain.FlightType
	Document      string
	Details       domain.PassengerDetails
	TicketClass   domain.TicketClass
	FlightDate    domain.Date
	DepartureTime domain.TimeOfDay
}

// Service owns the passenger records and the seat tables. A single mutex
// covers every operation so the seat state and the record set always change
// together.
type Service struct {
	mu                 sync.Mutex
	passengers         repository.PassengerRepository
	seats              SeatInventory
	producer           Producer
	ticketTopic        string
	notificationsTopic string
	clock              schedule.Clock
	newID              func() string
	log                logrus.FieldLogger
}

type ServiceOption func(*Service)

func WithProducer(producer Producer, ticketTopic string) ServiceOption {
	return func(s *Service) {
		s.producer = producer
		s.ticketTopic = ticketTopic
	}
}

func WithNotificationsTopic(topic string) ServiceOption {
	return func(s *Service) {
		s.notificationsTopic = topic
	}
}

func WithClock(clock schedule.Clock) ServiceOption {
	return func(s *Service) {
		s.clock = clock
	}
}

func WithIDGenerator(newID func() string) ServiceOption {
	return func(s *Service) {
		s.newID = newID
	}
}

func WithLogger(log logrus.FieldLogger) ServiceOption {
	return func(s *Service) {
		s.log = log
	}
}

func NewService(passengers repository.PassengerRepository, seats SeatInventory, opts ...ServiceOption) *Service {
	s := &Service{
		passengers: passengers,
		seats:      seats,
		clock:      time.Now,
		newID:      uuid.NewString,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewInMemory builds a service with a fresh repository and seat inventory.
func NewInMemory(invOpts []inventory.Option, opts ...ServiceOption) *Service {
	return NewService(repository.NewPassengerRepository(), inventory.New(invOpts...), opts...)
}

// Book registers a new passenger. A document already on the registry is
// rejected before any other field is looked at.
func (s *Service) Book(ctx context.Context, input BookInput) (domain.Passenger, error) {
	if strings.TrimSpace(input.Document) == "" {
		return domain.Passenger{}, domain.ErrEmptyDocument
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.passengers.GetByDocument(input.Document); err == nil {
		return domain.Passenger{}, fmt.Errorf("%w: %s", domain.ErrDuplicateDocument, input.Document)
	}
	if err := s.validateBooking(input); err != nil {
		return domain.Passenger{}, err
	}

	arrivalDate, arrivalTime := schedule.ComputeArrival(input.FlightType, input.FlightDate, input.DepartureTime)

	seat, err := s.seats.Allocate(input.FlightType, input.TicketClass)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"document":    input.Document,
			"flight_code": input.FlightType.Code(),
			"class":       input.TicketClass.String(),
		}).Warn("booking rejected, class is full")
		return domain.Passenger{}, err
	}

	passenger := domain.Passenger{
		TicketID:         s.newID(),
		FlightType:       input.FlightType,
		FlightCode:       input.FlightType.Code(),
		Document:         input.Document,
		PassengerDetails: input.Details,
		TicketClass:      input.TicketClass,
		FlightDate:       input.FlightDate,
		DepartureTime:    input.DepartureTime,
		ArrivalDate:      arrivalDate,
		ArrivalTime:      arrivalTime,
		SeatNumber:       seat,
	}
	if err := s.passengers.Insert(passenger); err != nil {
		s.seats.Release(input.FlightType, seat)
		return domain.Passenger{}, err
	}

	s.logFor(passenger).Info("ticket booked")
	s.publish(ctx, kafka.EventTicketBooked, passenger, 0)
	return passenger, nil
}

func (s *Service) FindByDocument(_ context.Context, document string) (domain.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.passengers.GetByDocument(document)
}

// Modify replaces the personal details of a passenger. Flight, class, seat and
// document stay as booked.
func (s *Service) Modify(ctx context.Context, document string, details domain.PassengerDetails) (domain.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	passenger, err := s.passengers.GetByDocument(document)
	if err != nil {
		return domain.Passenger{}, err
	}
	if err := s.validateDetails(details); err != nil {
		return domain.Passenger{}, err
	}
	passenger.PassengerDetails = details
	if err := s.passengers.Update(passenger); err != nil {
		return domain.Passenger{}, err
	}

	s.logFor(passenger).Info("passenger modified")
	s.publish(ctx, kafka.EventPassengerModified, passenger, 0)
	return passenger, nil
}

func (s *Service) Cancel(ctx context.Context, document string) (domain.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.passengers.Delete(document)
	if err != nil {
		return domain.Passenger{}, err
	}
	s.seats.Release(removed.FlightType, removed.SeatNumber)

	s.logFor(removed).Info("ticket cancelled")
	s.publish(ctx, kafka.EventTicketCancelled, removed, 0)
	return removed, nil
}

// ChangeSeat moves a passenger to a free seat of their own class. On any
// failure both the old and the requested seat keep their previous state.
func (s *Service) ChangeSeat(ctx context.Context, document string, seat int) (domain.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	passenger, err := s.passengers.GetByDocument(document)
	if err != nil {
		return domain.Passenger{}, err
	}
	if !passenger.TicketClass.Seats().Contains(seat) {
		return domain.Passenger{}, fmt.Errorf("%w: seat %d, %s", domain.ErrSeatOutOfClassRange, seat, passenger.TicketClass)
	}
	if err := s.seats.Occupy(passenger.FlightType, seat); err != nil {
		return domain.Passenger{}, err
	}

	previous := passenger.SeatNumber
	passenger.SeatNumber = seat
	if err := s.passengers.Update(passenger); err != nil {
		s.seats.Release(passenger.FlightType, seat)
		return domain.Passenger{}, err
	}
	s.seats.Release(passenger.FlightType, previous)

	s.logFor(passenger).WithField("previous_seat", previous).Info("seat changed")
	s.publish(ctx, kafka.EventSeatChanged, passenger, previous)
	return passenger, nil
}

func (s *Service) List(_ context.Context) []domain.Passenger {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.passengers.List()
}

func (s *Service) BoardingPass(_ context.Context, document string) (domain.BoardingPass, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	passenger, err := s.passengers.GetByDocument(document)
	if err != nil {
		return domain.BoardingPass{}, err
	}
	return passenger.BoardingPass(), nil
}

func (s *Service) AvailableSeats(_ context.Context, ft domain.FlightType, class domain.TicketClass) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.seats.Available(ft, class)
}

// IsOccupied exposes the seat table for consistency checks.
func (s *Service) IsOccupied(ft domain.FlightType, seat int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.seats.IsOccupied(ft, seat)
}

func (s *Service) validateBooking(input BookInput) error {
	if !input.FlightType.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrUnknownFlightType, input.FlightType)
	}
	if !input.TicketClass.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrUnknownTicketClass, input.TicketClass)
	}
	if err := s.validateDetails(input.Details); err != nil {
		return err
	}
	if !schedule.ValidateDate(input.FlightDate.Day, input.FlightDate.Month, input.FlightDate.Year) {
		return fmt.Errorf("%w: flight date %s", domain.ErrInvalidDate, input.FlightDate)
	}
	if !schedule.ValidateTime(input.DepartureTime.Hour, input.DepartureTime.Minute) {
		return fmt.Errorf("%w: departure %s", domain.ErrInvalidTime, input.DepartureTime)
	}
	if !s.clock.IsFutureOrEqual(input.FlightDate, input.DepartureTime) {
		return fmt.Errorf("%w: flight %s %s is in the past", domain.ErrInvalidTemporalOrdering, input.FlightDate, input.DepartureTime)
	}
	return nil
}

func (s *Service) validateDetails(details domain.PassengerDetails) error {
	if !details.Gender.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidGender, details.Gender)
	}
	birth := details.BirthDate
	if !schedule.ValidateDate(birth.Day, birth.Month, birth.Year) {
		return fmt.Errorf("%w: birth date %s", domain.ErrInvalidDate, birth)
	}
	if !s.clock.IsPastOrEqual(birth, domain.Midnight) {
		return fmt.Errorf("%w: birth date %s is in the future", domain.ErrInvalidTemporalOrdering, birth)
	}
	return nil
}

func (s *Service) logFor(p domain.Passenger) logrus.FieldLogger {
	return s.log.WithFields(logrus.Fields{
		"document":    p.Document,
		"flight_code": p.FlightCode,
		"seat":        p.SeatNumber,
	})
}

// publish is best effort: the registry has already changed, so a broker
// failure is logged and not returned.
func (s *Service) publish(ctx context.Context, eventType string, p domain.Passenger, previousSeat int) {
	if s.producer == nil || s.ticketTopic == "" {
		return
	}
	event := kafka.TicketEvent{
		ID:           s.newID(),
		Type:         eventType,
		TicketID:     p.TicketID,
		Document:     p.Document,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Phone:        p.Phone,
		FlightCode:   p.FlightCode,
		TicketClass:  p.TicketClass.String(),
		SeatNumber:   p.SeatNumber,
		PreviousSeat: previousSeat,
		Departure:    p.FlightDate.String() + " " + p.DepartureTime.String(),
		Arrival:      p.ArrivalDate.String() + " " + p.ArrivalTime.String(),
		OccurredAt:   s.clock(),
	}

	topics := []string{s.ticketTopic}
	if s.notificationsTopic != "" {
		topics = append(topics, s.notificationsTopic)
	}
	for _, topic := range topics {
		if err := s.producer.Publish(ctx, topic, p.Document, event); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"topic":    topic,
				"document": p.Document,
				"type":     eventType,
			}).Warn("failed to publish ticket event")
		}
	}
}

var _ RegistryUseCase = (*Service)(nil)
