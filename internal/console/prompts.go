package console

import (
	"context"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Domenick1991/ticketoffice/internal/domain"
	"github.com/Domenick1991/ticketoffice/internal/render"
	"github.com/Domenick1991/ticketoffice/internal/schedule"
)

// readRaw returns the next input line without its terminator. A final line
// with no newline is still returned; io.EOF only when nothing is left.
func (c *Console) readRaw() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readLine prompts until a non-blank line arrives.
func (c *Console) readLine(prompt string) (string, error) {
	for {
		c.print(prompt)
		line, err := c.readRaw()
		if err != nil {
			return "", err
		}
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
		c.println(msgEmptyInput)
	}
}

func (c *Console) readFlightType(ctx context.Context) (domain.FlightType, error) {
	c.print(render.FlightOptions(c.flights.List(ctx)))
	for {
		option, err := c.readLine("Opción: ")
		if err != nil {
			return 0, err
		}
		switch option {
		case "1", "01":
			return domain.FlightNational, nil
		case "2", "02":
			return domain.FlightInternational, nil
		}
		c.println(msgInvalidOption)
	}
}

func (c *Console) readTicketClass() (domain.TicketClass, error) {
	c.print(render.ClassOptions())
	for {
		option, err := c.readLine("Opción: ")
		if err != nil {
			return 0, err
		}
		switch option {
		case "1":
			return domain.ClassFirst, nil
		case "2":
			return domain.ClassEconomy, nil
		}
		c.println(msgInvalidOption)
	}
}

// readNewDocument keeps asking while the document is already registered.
func (c *Console) readNewDocument(ctx context.Context) (string, error) {
	for {
		document, err := c.readLine("Documento del pasajero: ")
		if err != nil {
			return "", err
		}
		if _, err := c.registry.FindByDocument(ctx, document); err == nil {
			c.println(msgDuplicate)
			continue
		}
		return document, nil
	}
}

func (c *Console) readDetails(firstPrompt, lastPrompt, phonePrompt string) (domain.PassengerDetails, error) {
	var (
		details domain.PassengerDetails
		err     error
	)
	if details.FirstName, err = c.readLine(firstPrompt); err != nil {
		return details, err
	}
	if details.LastName, err = c.readLine(lastPrompt); err != nil {
		return details, err
	}
	if details.Phone, err = c.readLine(phonePrompt); err != nil {
		return details, err
	}
	if details.BirthDate, err = c.readBirthDate(); err != nil {
		return details, err
	}
	if details.Gender, err = c.readGender(); err != nil {
		return details, err
	}
	return details, nil
}

func (c *Console) readDate(prompt string) (domain.Date, error) {
	for {
		raw, err := c.readLine(prompt)
		if err != nil {
			return domain.Date{}, err
		}
		date, err := schedule.ParseDate(raw)
		if err == nil {
			return date, nil
		}
		c.println(msgInvalidDate)
	}
}

func (c *Console) readTime(prompt string) (domain.TimeOfDay, error) {
	for {
		raw, err := c.readLine(prompt)
		if err != nil {
			return domain.TimeOfDay{}, err
		}
		t, err := schedule.ParseTime(raw)
		if err == nil {
			return t, nil
		}
		c.println("Hora inválida.")
	}
}

func (c *Console) readBirthDate() (domain.Date, error) {
	for {
		date, err := c.readDate("Fecha de nacimiento (dd/mm/aaaa): ")
		if err != nil {
			return domain.Date{}, err
		}
		if c.clock.IsPastOrEqual(date, domain.Midnight) {
			return date, nil
		}
		c.println("La fecha de nacimiento debe ser en el pasado.")
	}
}

func (c *Console) readGender() (domain.Gender, error) {
	for {
		raw, err := c.readLine("Género (F/M/O): ")
		if err != nil {
			return 0, err
		}
		if utf8.RuneCountInString(raw) != 1 {
			c.println("Ingrese únicamente F, M u O.")
			continue
		}
		gender := domain.Gender(strings.ToUpper(raw)[0])
		if gender.Valid() {
			return gender, nil
		}
		c.println("Valor inválido.")
	}
}

// readFlightSchedule asks for date and departure time together until the
// pair is not in the past.
func (c *Console) readFlightSchedule() (domain.Date, domain.TimeOfDay, error) {
	for {
		date, err := c.readDate("Fecha del vuelo (dd/mm/aaaa): ")
		if err != nil {
			return domain.Date{}, domain.TimeOfDay{}, err
		}
		departure, err := c.readTime("Hora de salida (hh:mm): ")
		if err != nil {
			return domain.Date{}, domain.TimeOfDay{}, err
		}
		if c.clock.IsFutureOrEqual(date, departure) {
			return date, departure, nil
		}
		c.println("La fecha y hora del vuelo deben ser presentes o futuras.")
	}
}
