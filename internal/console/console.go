// Package console runs the ticket office menu: it prompts the operator,
// re-asks on invalid input and hands validated values to the registry.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/ticketoffice/internal/domain"
	"github.com/Domenick1991/ticketoffice/internal/render"
	"github.com/Domenick1991/ticketoffice/internal/schedule"
	"github.com/Domenick1991/ticketoffice/internal/service/flights"
	"github.com/Domenick1991/ticketoffice/internal/service/registry"
	"github.com/sirupsen/logrus"
)

const (
	msgNotFound       = "No se encontró un pasajero con ese documento."
	msgDuplicate      = "Ya existe un pasajero con ese documento."
	msgNoSeat         = "No hay sillas disponibles en la clase seleccionada para este vuelo."
	msgInvalidOption  = "Opción inválida, intente nuevamente."
	msgInvalidDate    = "Fecha inválida."
	msgEmptyInput     = "Entrada vacía, intente de nuevo."
	msgGoodbye        = "Gracias por utilizar el sistema de tiquetes."
	msgSeatOutOfClass = "La silla seleccionada no pertenece a la clase del pasajero."
	msgSeatTaken      = "La silla seleccionada no está disponible."
)

type Console struct {
	registry registry.RegistryUseCase
	flights  flights.FlightUseCase
	in       *bufio.Reader
	out      io.Writer
	clock    schedule.Clock
	log      logrus.FieldLogger
}

type Option func(*Console)

func WithClock(clock schedule.Clock) Option {
	return func(c *Console) {
		c.clock = clock
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Console) {
		c.log = log
	}
}

func New(reg registry.RegistryUseCase, fl flights.FlightUseCase, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		registry: reg,
		flights:  fl,
		in:       bufio.NewReader(in),
		out:      out,
		clock:    time.Now,
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run shows the menu until the operator exits, input ends or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	actions := map[string]func(context.Context) error{
		"1": c.buyTicket,
		"2": c.modifyPassenger,
		"3": c.listPassengers,
		"4": c.searchPassenger,
		"5": c.changeSeat,
		"6": c.printBoardingPass,
		"7": c.cancelTicket,
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		c.print(render.Menu())
		option, err := c.readLine("Seleccione una opción: ")
		if err != nil {
			return endOfInput(err)
		}

		option = strings.TrimLeft(option, "0")
		if option == "8" {
			c.println(msgGoodbye)
			return nil
		}
		action, ok := actions[option]
		if !ok {
			c.println(msgInvalidOption)
			c.println("")
			continue
		}
		if err := action(ctx); err != nil {
			return endOfInput(err)
		}
		c.println("")
	}
}

func (c *Console) buyTicket(ctx context.Context) error {
	ft, err := c.readFlightType(ctx)
	if err != nil {
		return err
	}
	document, err := c.readNewDocument(ctx)
	if err != nil {
		return err
	}
	details, err := c.readDetails("Nombre del pasajero: ", "Apellido del pasajero: ", "Teléfono del pasajero: ")
	if err != nil {
		return err
	}
	class, err := c.readTicketClass()
	if err != nil {
		return err
	}
	date, departure, err := c.readFlightSchedule()
	if err != nil {
		return err
	}

	passenger, err := c.registry.Book(ctx, registry.BookInput{
		FlightType:    ft,
		Document:      document,
		Details:       details,
		TicketClass:   class,
		FlightDate:    date,
		DepartureTime: departure,
	})
	switch {
	case err == nil:
		c.printf("Tiquete comprado exitosamente. Silla asignada: %d\n", passenger.SeatNumber)
	case errors.Is(err, domain.ErrNoSeatAvailable):
		c.println(msgNoSeat)
	case errors.Is(err, domain.ErrDuplicateDocument):
		c.println(msgDuplicate)
	default:
		c.log.WithError(err).Warn("booking failed")
		c.printf("No se pudo comprar el tiquete: %v\n", err)
	}
	return nil
}

func (c *Console) modifyPassenger(ctx context.Context) error {
	passenger, ok, err := c.lookup(ctx, "Documento del pasajero a modificar: ")
	if err != nil || !ok {
		return err
	}

	c.printf("Modificando pasajero %s %s\n", passenger.FirstName, passenger.LastName)
	details, err := c.readDetails("Nuevo nombre: ", "Nuevo apellido: ", "Nuevo teléfono: ")
	if err != nil {
		return err
	}

	switch _, err := c.registry.Modify(ctx, passenger.Document, details); {
	case err == nil:
		c.println("Datos modificados correctamente.")
	case errors.Is(err, domain.ErrNotFound):
		c.println(msgNotFound)
	default:
		c.log.WithError(err).Warn("modify failed")
		c.printf("No se pudieron modificar los datos: %v\n", err)
	}
	return nil
}

func (c *Console) listPassengers(ctx context.Context) error {
	c.print(render.PassengerList(c.registry.List(ctx)))
	return nil
}

func (c *Console) searchPassenger(ctx context.Context) error {
	passenger, ok, err := c.lookup(ctx, "Documento del pasajero a buscar: ")
	if err != nil || !ok {
		return err
	}
	c.print(render.Passenger(passenger, true))
	return nil
}

func (c *Console) changeSeat(ctx context.Context) error {
	passenger, ok, err := c.lookup(ctx, "Documento del pasajero: ")
	if err != nil || !ok {
		return err
	}

	c.printf("Silla actual: %d\n", passenger.SeatNumber)
	c.print(render.SeatList(c.registry.AvailableSeats(ctx, passenger.FlightType, passenger.TicketClass)))
	c.print("Ingrese la nueva silla deseada: ")
	raw, err := c.readRaw()
	if err != nil {
		return err
	}
	seat, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		c.println("Número de silla inválido.")
		return nil
	}

	switch _, err := c.registry.ChangeSeat(ctx, passenger.Document, seat); {
	case err == nil:
		c.println("Silla actualizada correctamente.")
	case errors.Is(err, domain.ErrSeatOutOfClassRange):
		c.println(msgSeatOutOfClass)
	case errors.Is(err, domain.ErrSeatUnavailable):
		c.println(msgSeatTaken)
	case errors.Is(err, domain.ErrNotFound):
		c.println(msgNotFound)
	default:
		c.log.WithError(err).Warn("seat change failed")
		c.printf("No se pudo cambiar la silla: %v\n", err)
	}
	return nil
}

func (c *Console) printBoardingPass(ctx context.Context) error {
	document, err := c.readLine("Documento del pasajero: ")
	if err != nil {
		return err
	}
	pass, err := c.registry.BoardingPass(ctx, document)
	if err != nil {
		c.println(msgNotFound)
		return nil
	}
	c.print(render.BoardingPass(pass))
	return nil
}

func (c *Console) cancelTicket(ctx context.Context) error {
	document, err := c.readLine("Documento del pasajero a cancelar: ")
	if err != nil {
		return err
	}
	if _, err := c.registry.Cancel(ctx, document); err != nil {
		c.println(msgNotFound)
		return nil
	}
	c.println("Tiquete cancelado correctamente.")
	return nil
}

// lookup asks for a document and reports whether a passenger holds it.
func (c *Console) lookup(ctx context.Context, prompt string) (domain.Passenger, bool, error) {
	document, err := c.readLine(prompt)
	if err != nil {
		return domain.Passenger{}, false, err
	}
	passenger, err := c.registry.FindByDocument(ctx, document)
	if err != nil {
		c.println(msgNotFound)
		return domain.Passenger{}, false, nil
	}
	return passenger, true, nil
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (c *Console) print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
