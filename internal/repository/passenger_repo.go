package repository

import (
	"fmt"
	"slices"

	"github.com/Domenick1991/ticketoffice/internal/domain"
)

type PassengerRepository interface {
	Insert(passenger domain.Passenger) error
	GetByDocument(document string) (domain.Passenger, error)
	Update(passenger domain.Passenger) error
	Delete(document string) (domain.Passenger, error)
	List() []domain.Passenger
	Len() int
}

// MemoryPassengerRepository keeps passengers in insertion order with an index
// by document. Values are copied in and out so callers never share a record
// with the store.
type MemoryPassengerRepository struct {
	order []string
	byDoc map[string]*domain.Passenger
}

func NewPassengerRepository() *MemoryPassengerRepository {
	return &MemoryPassengerRepository{byDoc: make(map[string]*domain.Passenger)}
}

func (r *MemoryPassengerRepository) Insert(passenger domain.Passenger) error {
	if _, ok := r.byDoc[passenger.Document]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateDocument, passenger.Document)
	}
	r.byDoc[passenger.Document] = &passenger
	r.order = append(r.order, passenger.Document)
	return nil
}

func (r *MemoryPassengerRepository) GetByDocument(document string) (domain.Passenger, error) {
	p, ok := r.byDoc[document]
	if !ok {
		return domain.Passenger{}, fmt.Errorf("%w: %s", domain.ErrNotFound, document)
	}
	return *p, nil
}

func (r *MemoryPassengerRepository) Update(passenger domain.Passenger) error {
	p, ok := r.byDoc[passenger.Document]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, passenger.Document)
	}
	*p = passenger
	return nil
}

func (r *MemoryPassengerRepository) Delete(document string) (domain.Passenger, error) {
	p, ok := r.byDoc[document]
	if !ok {
		return domain.Passenger{}, fmt.Errorf("%w: %s", domain.ErrNotFound, document)
	}
	delete(r.byDoc, document)
	if idx := slices.Index(r.order, document); idx >= 0 {
		r.order = slices.Delete(r.order, idx, idx+1)
	}
	return *p, nil
}

func (r *MemoryPassengerRepository) List() []domain.Passenger {
	out := make([]domain.Passenger, 0, len(r.order))
	for _, doc := range r.order {
		out = append(out, *r.byDoc[doc])
	}
	return out
}

func (r *MemoryPassengerRepository) Len() int {
	return len(r.order)
}

var _ PassengerRepository = (*MemoryPassengerRepository)(nil)
