// Package schedule holds the calendar and clock rules of the ticket office:
// date and time validation, comparisons against the current moment and
// arrival time derivation.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/ticketoffice/internal/domain"
)

const minYear = 1900

// Clock returns the current moment. Tests pin it to a fixed instant.
type Clock func() time.Time

func DaysInMonth(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	// Day zero of the next month normalizes to the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func ValidateDate(day, month, year int) bool {
	if year < minYear {
		return false
	}
	return day >= 1 && day <= DaysInMonth(month, year)
}

func ValidateTime(hour, minute int) bool {
	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}

// Instant places a date and time of day in the operator's local zone.
func Instant(date domain.Date, t domain.TimeOfDay) time.Time {
	return time.Date(date.Year, time.Month(date.Month), date.Day, t.Hour, t.Minute, 0, 0, time.Local)
}

// IsPastOrEqual reports whether date/t is not after now. Comparison is done at
// second granularity, so the current second satisfies both IsPastOrEqual and
// IsFutureOrEqual.
func (c Clock) IsPastOrEqual(date domain.Date, t domain.TimeOfDay) bool {
	return !Instant(date, t).After(c.now())
}

func (c Clock) IsFutureOrEqual(date domain.Date, t domain.TimeOfDay) bool {
	return !Instant(date, t).Before(c.now())
}

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().Truncate(time.Second)
	}
	return c().Truncate(time.Second)
}

// ComputeArrival adds the route duration and timezone shift of the flight
// type to the departure as one minute delta. The arithmetic runs in UTC so
// daylight saving transitions of the local zone cannot skew the result.
func ComputeArrival(ft domain.FlightType, date domain.Date, t domain.TimeOfDay) (domain.Date, domain.TimeOfDay) {
	route := ft.Route()
	departure := time.Date(date.Year, time.Month(date.Month), date.Day, t.Hour, t.Minute, 0, 0, time.UTC)
	arrival := departure.Add(route.Duration + route.TimezoneShift)

	return domain.Date{Day: arrival.Day(), Month: int(arrival.Month()), Year: arrival.Year()},
		domain.TimeOfDay{Hour: arrival.Hour(), Minute: arrival.Minute()}
}

// ParseDate reads a dd/mm/aaaa string.
func ParseDate(input string) (domain.Date, error) {
	parts, err := splitInts(input, "/", 3)
	if err != nil || !ValidateDate(parts[0], parts[1], parts[2]) {
		return domain.Date{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, input)
	}
	return domain.Date{Day: parts[0], Month: parts[1], Year: parts[2]}, nil
}

// ParseTime reads a 24 hour hh:mm string.
func ParseTime(input string) (domain.TimeOfDay, error) {
	parts, err := splitInts(input, ":", 2)
	if err != nil || !ValidateTime(parts[0], parts[1]) {
		return domain.TimeOfDay{}, fmt.Errorf("%w: %q", domain.ErrInvalidTime, input)
	}
	return domain.TimeOfDay{Hour: parts[0], Minute: parts[1]}, nil
}

func splitInts(input, sep string, n int) ([]int, error) {
	fields := strings.Split(strings.TrimSpace(input), sep)
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d fields, got %d", n, len(fields))
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
