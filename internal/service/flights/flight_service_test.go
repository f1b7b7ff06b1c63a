package flights

import (
	"context"
	"testing"

	"github.com/Domenick1991/ticketoffice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSeatSource struct {
	mock.Mock
}

func (m *MockSeatSource) AvailableSeats(ctx context.Context, ft domain.FlightType, class domain.TicketClass) []int {
	args := m.Called(ctx, ft, class)
	return args.Get(0).([]int)
}

func TestFlightService_List(t *testing.T) {
	seats := &MockSeatSource{}
	service := NewFlightService(seats)
	ctx := context.Background()

	seats.On("AvailableSeats", ctx, domain.FlightNational, domain.ClassFirst).Return([]int{1, 2}).Once()
	seats.On("AvailableSeats", ctx, domain.FlightNational, domain.ClassEconomy).Return([]int{21, 22, 23}).Once()
	seats.On("AvailableSeats", ctx, domain.FlightInternational, domain.ClassFirst).Return([]int{}).Once()
	seats.On("AvailableSeats", ctx, domain.FlightInternational, domain.ClassEconomy).Return([]int{250}).Once()

	flights := service.List(ctx)

	require.Len(t, flights, 2)
	assert.Equal(t, "GOPLA01", flights[0].Route.Code)
	assert.Equal(t, "Pereira", flights[0].Route.FromCity)
	assert.Equal(t, 2, flights[0].FreeFirst)
	assert.Equal(t, 3, flights[0].FreeEconomy)
	assert.Equal(t, "Madrid", flights[1].Route.ToCity)
	assert.Equal(t, 0, flights[1].FreeFirst)
	assert.Equal(t, 1, flights[1].FreeEconomy)

	seats.AssertExpectations(t)
}

func TestFlightService_Get(t *testing.T) {
	seats := &MockSeatSource{}
	service := NewFlightService(seats)
	ctx := context.Background()

	seats.On("AvailableSeats", ctx, domain.FlightInternational, mock.Anything).Return([]int{5}).Twice()

	flight, err := service.Get(ctx, domain.FlightInternational)
	require.NoError(t, err)
	assert.Equal(t, domain.FlightInternational, flight.Type)
	assert.Equal(t, 1, flight.FreeFirst)

	_, err = service.Get(ctx, domain.FlightType(9))
	assert.ErrorIs(t, err, domain.ErrUnknownFlightType)

	seats.AssertExpectations(t)
}
