// Package collection хранит последнюю загруженную из хранилища коллекцию заказов.
package collection

import (
	"slices"
	"sync"
	"time"

	"ordertracker/internal/entities"
)

type Store struct {
	mu       sync.RWMutex
	orders   []entities.Order
	loadedAt time.Time
	now      func() time.Time
}

func New() *Store {
	return &Store{now: time.Now}
}

// Orders отдает копию, вызывающий может ее менять.
func (s *Store) Orders() []entities.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.orders)
}

func (s *Store) Replace(orders []entities.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = slices.Clone(orders)
	s.loadedAt = s.now()
}

// Upsert заменяет запись с тем же ID на месте или добавляет в начало,
// как новые заказы приходят из хранилища.
func (s *Store) Upsert(order entities.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.orders, func(o entities.Order) bool { return o.ID == order.ID })
	if idx >= 0 {
		s.orders[idx] = order
		return
	}
	s.orders = slices.Insert(s.orders, 0, order)
}

func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = slices.DeleteFunc(s.orders, func(o entities.Order) bool { return o.ID == id })
}

func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadedAt
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.orders)
}
