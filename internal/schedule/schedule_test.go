package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/ticketoffice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDate(t *testing.T) {
	testCases := []struct {
		name  string
		day   int
		month int
		year  int
		want  bool
	}{
		{name: "leap day in non leap year", day: 29, month: 2, year: 2023, want: false},
		{name: "leap day in leap year", day: 29, month: 2, year: 2024, want: true},
		{name: "century not leap", day: 29, month: 2, year: 1900, want: false},
		{name: "400 year leap", day: 29, month: 2, year: 2000, want: true},
		{name: "april has 30 days", day: 31, month: 4, year: 2024, want: false},
		{name: "december 31", day: 31, month: 12, year: 2024, want: true},
		{name: "day zero", day: 0, month: 1, year: 2024, want: false},
		{name: "month 13", day: 1, month: 13, year: 2024, want: false},
		{name: "month zero", day: 1, month: 0, year: 2024, want: false},
		{name: "year before 1900", day: 1, month: 1, year: 1899, want: false},
		{name: "first valid year", day: 1, month: 1, year: 1900, want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateDate(tc.day, tc.month, tc.year))
		})
	}
}

func TestValidateTime(t *testing.T) {
	assert.True(t, ValidateTime(0, 0))
	assert.True(t, ValidateTime(23, 59))
	assert.False(t, ValidateTime(24, 0))
	assert.False(t, ValidateTime(12, 60))
	assert.False(t, ValidateTime(-1, 30))
}

func TestComputeArrival(t *testing.T) {
	testCases := []struct {
		name     string
		ft       domain.FlightType
		date     domain.Date
		tod      domain.TimeOfDay
		wantDate domain.Date
		wantTime domain.TimeOfDay
	}{
		{
			name:     "national crosses midnight",
			ft:       domain.FlightNational,
			date:     domain.Date{Day: 1, Month: 1, Year: 2024},
			tod:      domain.TimeOfDay{Hour: 23, Minute: 30},
			wantDate: domain.Date{Day: 2, Month: 1, Year: 2024},
			wantTime: domain.TimeOfDay{Hour: 0, Minute: 20},
		},
		{
			name:     "international crosses year",
			ft:       domain.FlightInternational,
			date:     domain.Date{Day: 31, Month: 12, Year: 2023},
			tod:      domain.TimeOfDay{Hour: 20, Minute: 0},
			wantDate: domain.Date{Day: 1, Month: 1, Year: 2024},
			wantTime: domain.TimeOfDay{Hour: 14, Minute: 0},
		},
		{
			name:     "international rolls into leap day",
			ft:       domain.FlightInternational,
			date:     domain.Date{Day: 28, Month: 2, Year: 2024},
			tod:      domain.TimeOfDay{Hour: 10, Minute: 15},
			wantDate: domain.Date{Day: 29, Month: 2, Year: 2024},
			wantTime: domain.TimeOfDay{Hour: 4, Minute: 15},
		},
		{
			name:     "national same day",
			ft:       domain.FlightNational,
			date:     domain.Date{Day: 15, Month: 6, Year: 2025},
			tod:      domain.TimeOfDay{Hour: 8, Minute: 5},
			wantDate: domain.Date{Day: 15, Month: 6, Year: 2025},
			wantTime: domain.TimeOfDay{Hour: 8, Minute: 55},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotDate, gotTime := ComputeArrival(tc.ft, tc.date, tc.tod)
			assert.Equal(t, tc.wantDate, gotDate)
			assert.Equal(t, tc.wantTime, gotTime)
		})
	}
}

func TestClock_BoundsAreInclusive(t *testing.T) {
	now := time.Date(2024, time.May, 10, 12, 30, 0, 0, time.Local)
	clock := Clock(func() time.Time { return now })

	date := domain.Date{Day: 10, Month: 5, Year: 2024}
	at := domain.TimeOfDay{Hour: 12, Minute: 30}

	assert.True(t, clock.IsPastOrEqual(date, at))
	assert.True(t, clock.IsFutureOrEqual(date, at))

	later := domain.TimeOfDay{Hour: 12, Minute: 31}
	assert.False(t, clock.IsPastOrEqual(date, later))
	assert.True(t, clock.IsFutureOrEqual(date, later))

	earlier := domain.TimeOfDay{Hour: 12, Minute: 29}
	assert.True(t, clock.IsPastOrEqual(date, earlier))
	assert.False(t, clock.IsFutureOrEqual(date, earlier))
}

func TestClock_SubSecondNowStillEqual(t *testing.T) {
	now := time.Date(2024, time.May, 10, 12, 30, 0, 400_000_000, time.Local)
	clock := Clock(func() time.Time { return now })

	date := domain.Date{Day: 10, Month: 5, Year: 2024}
	at := domain.TimeOfDay{Hour: 12, Minute: 30}

	assert.True(t, clock.IsPastOrEqual(date, at))
	assert.True(t, clock.IsFutureOrEqual(date, at))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("05/11/1990")
	require.NoError(t, err)
	assert.Equal(t, domain.Date{Day: 5, Month: 11, Year: 1990}, d)

	for _, in := range []string{"", "5-11-1990", "31/02/2024", "aa/bb/cccc", "1/1"} {
		_, err := ParseDate(in)
		assert.True(t, errors.Is(err, domain.ErrInvalidDate), in)
	}
}

func TestParseTime(t *testing.T) {
	tod, err := ParseTime("07:45")
	require.NoError(t, err)
	assert.Equal(t, domain.TimeOfDay{Hour: 7, Minute: 45}, tod)

	for _, in := range []string{"24:00", "7", "ab:cd", "12:60"} {
		_, err := ParseTime(in)
		assert.ErrorIs(t, err, domain.ErrInvalidTime, in)
	}
}
