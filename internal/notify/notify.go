// Package notify turns ticket events into passenger notices.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/ticketoffice/internal/kafka"
	"github.com/sirupsen/logrus"
)

type Sender struct {
	log logrus.FieldLogger
}

func NewSender(log logrus.FieldLogger) *Sender {
	return &Sender{log: log}
}

// Send delivers the notice for event. Delivery is the log line itself; there
// is no SMS gateway behind it yet.
func (s *Sender) Send(_ context.Context, event kafka.TicketEvent) error {
	s.log.WithFields(logrus.Fields{
		"event_id": event.ID,
		"type":     event.Type,
		"phone":    event.Phone,
		"ticket":   event.TicketID,
	}).Info(Message(event))
	return nil
}

// Message is the text sent to the passenger for event.
func Message(event kafka.TicketEvent) string {
	name := event.FirstName + " " + event.LastName
	switch event.Type {
	case kafka.EventTicketBooked:
		return fmt.Sprintf("%s, su tiquete %s del vuelo %s (%s) fue emitido. Silla %d, salida %s.",
			name, event.TicketID, event.FlightCode, event.TicketClass, event.SeatNumber, event.Departure)
	case kafka.EventPassengerModified:
		return fmt.Sprintf("%s, los datos de su tiquete %s fueron actualizados.", name, event.TicketID)
	case kafka.EventSeatChanged:
		return fmt.Sprintf("%s, su silla en el vuelo %s cambió de %d a %d.", name, event.FlightCode, event.PreviousSeat, event.SeatNumber)
	case kafka.EventTicketCancelled:
		return fmt.Sprintf("%s, su tiquete %s del vuelo %s fue cancelado.", name, event.TicketID, event.FlightCode)
	default:
		return fmt.Sprintf("%s, hay novedades en su tiquete %s.", name, event.TicketID)
	}
}

type Marker interface {
	MarkNotified(ctx context.Context, eventID string, ttl time.Duration) (bool, error)
	UnmarkNotified(ctx context.Context, eventID string) error
}

type Notifier interface {
	Send(ctx context.Context, event kafka.TicketEvent) error
}

// Dispatcher sends each event at most once per dedup window, even when the
// broker redelivers it.
type Dispatcher struct {
	marks  Marker
	sender Notifier
	ttl    time.Duration
	log    logrus.FieldLogger
}

func NewDispatcher(marks Marker, sender Notifier, ttl time.Duration, log logrus.FieldLogger) *Dispatcher {
	return &Dispatcher{marks: marks, sender: sender, ttl: ttl, log: log}
}

func (d *Dispatcher) Handle(ctx context.Context, event kafka.TicketEvent) error {
	fresh, err := d.marks.MarkNotified(ctx, event.ID, d.ttl)
	if err != nil {
		return fmt.Errorf("mark event %s: %w", event.ID, err)
	}
	if !fresh {
		d.log.WithField("event_id", event.ID).Debug("event already notified")
		return nil
	}

	if err := d.sender.Send(ctx, event); err != nil {
		if unmarkErr := d.marks.UnmarkNotified(ctx, event.ID); unmarkErr != nil {
			d.log.WithError(unmarkErr).WithField("event_id", event.ID).Warn("failed to clear notification mark")
		}
		return fmt.Errorf("send notification %s: %w", event.ID, err)
	}
	return nil
}
