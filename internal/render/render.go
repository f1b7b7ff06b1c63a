// Package render turns registry data into the text shown at the counter.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Domenick1991/ticketoffice/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

const (
	Airline       = "GOLONDRINA VELOZ"
	seatsPerLine  = 15
	listSeparator = "-----------------------------"
)

var (
	colorAccent = lipgloss.Color("#1D9EA3")
	colorMuted  = lipgloss.Color("#2C4A54")

	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	passStyle   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(colorAccent).Padding(0, 2)
)

func Banner(section string) string {
	return bannerStyle.Render("/////////////"+Airline+"//////////////////////////////") + "\n" +
		bannerStyle.Render("///////////////////////"+section+"/////////////////////") + "\n"
}

func Menu() string {
	var b strings.Builder
	b.WriteString(Banner("TIQUETES"))
	for i, item := range []string{
		"Comprar Tiquete",
		"Modificar Pasajero",
		"Listar Pasajeros",
		"Buscar pasajero",
		"Cambiar Silla",
		"Imprimir pase de abordar",
		"Cancelar Tiquete",
		"Salir",
	} {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return b.String()
}

// FlightOptions lists the routes with their free seats for the booking form.
func FlightOptions(flights []domain.Flight) string {
	var b strings.Builder
	b.WriteString("Seleccione el tipo de vuelo:\n")
	for _, f := range flights {
		kind := "Nacional"
		if f.Type == domain.FlightInternational {
			kind = "Internacional"
		}
		fmt.Fprintf(&b, "%s. %s (%s-%s) %s\n", f.Route.Label, kind, f.Route.FromCity, f.Route.ToCity,
			mutedStyle.Render(fmt.Sprintf("[%d primera / %d económica libres]", f.FreeFirst, f.FreeEconomy)))
	}
	return b.String()
}

func ClassOptions() string {
	var b strings.Builder
	b.WriteString("Seleccione la clase de tiquete:\n")
	for i, class := range []domain.TicketClass{domain.ClassFirst, domain.ClassEconomy} {
		seats := class.Seats()
		fmt.Fprintf(&b, "%d. %s (sillas %d-%d)\n", i+1, class, seats.Start, seats.End)
	}
	return b.String()
}

// Passenger prints one record. Flight details are only shown on search.
func Passenger(p domain.Passenger, withFlight bool) string {
	var b strings.Builder
	line := func(label string, value any) {
		fmt.Fprintf(&b, "%s: %v\n", label, value)
	}
	line("Documento", p.Document)
	line("Nombre", p.FirstName)
	line("Apellido", p.LastName)
	line("Teléfono", p.Phone)
	line("Fecha de nacimiento", p.BirthDate)
	line("Género", p.Gender)
	line("Clase de tiquete", p.TicketClass)
	line("Silla", p.SeatNumber)
	if withFlight {
		line("Tipo de vuelo", p.FlightType)
		line("Código de vuelo", p.FlightCode)
		line("Fecha de vuelo", p.FlightDate)
		line("Hora de salida", p.DepartureTime)
		line("Fecha de llegada", p.ArrivalDate)
		line("Hora de llegada", p.ArrivalTime)
	}
	return b.String()
}

func PassengerList(passengers []domain.Passenger) string {
	if len(passengers) == 0 {
		return "No hay pasajeros registrados.\n"
	}
	var b strings.Builder
	for _, p := range passengers {
		b.WriteString(Passenger(p, false))
		b.WriteString(listSeparator + "\n")
	}
	return b.String()
}

// SeatList prints free seats fifteen per line.
func SeatList(seats []int) string {
	if len(seats) == 0 {
		return "Sillas disponibles: (ninguna)\n"
	}
	rows := lo.Chunk(lo.Map(seats, func(seat int, _ int) string {
		return strconv.Itoa(seat)
	}), seatsPerLine)
	lines := lo.Map(rows, func(row []string, _ int) string {
		return strings.Join(row, " ")
	})
	return "Sillas disponibles: " + strings.Join(lines, "\n") + "\n"
}

func BoardingPass(bp domain.BoardingPass) string {
	body := strings.Join([]string{
		fmt.Sprintf("Tipo vuelo: %s", bp.FlightType),
		fmt.Sprintf("Código vuelo: %s", bp.FlightCode),
		fmt.Sprintf("Documento pasajero: %s", bp.Document),
		fmt.Sprintf("Nombre pasajero: %s", bp.FirstName),
		fmt.Sprintf("Apellido pasajero: %s", bp.LastName),
		fmt.Sprintf("Clase de tiquete: %s", bp.TicketClass),
		fmt.Sprintf("Fecha vuelo: %s", bp.FlightDate),
		fmt.Sprintf("Hora salida: %s", bp.DepartureTime),
		fmt.Sprintf("Fecha llegada: %s", bp.ArrivalDate),
		fmt.Sprintf("Hora llegada: %s", bp.ArrivalTime),
		fmt.Sprintf("Silla: %d", bp.SeatNumber),
		mutedStyle.Render("Tiquete: " + bp.TicketID),
	}, "\n")
	return Banner("PASE DE ABORDAR") + passStyle.Render(body) + "\n"
}
