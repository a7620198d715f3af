// Package cart holds the storefront's line items and derived totals.
// Totals are always recomputed as pure sums of the surviving items.
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Ishaan-Rai09/coffee-shop/storefront/session"
)

// Item is one cart line. Quantity stays >= 1 while the line exists.
type Item struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Description  string  `json:"description"`
	CountInStock int     `json:"countInStock"`
}

// Store is the cart state owner. Mutations from concurrent goroutines
// are serialized by the mutex, mirroring the single event loop the
// browser storefront relied on.
type Store struct {
	mu            sync.Mutex
	items         []Item
	totalQuantity int
	totalAmount   float64
}

func New() *Store {
	return &Store{}
}

// AddItem merges into an existing line with the same id by incrementing
// its quantity, or inserts a new line. Stock limits are a UI concern,
// not enforced here.
func (s *Store) AddItem(item Item, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += quantity
			s.recompute()
			return
		}
	}
	item.Quantity = quantity
	s.items = append(s.items, item)
	s.recompute()
}

// RemoveItem deletes the line if present; unknown ids are ignored.
func (s *Store) RemoveItem(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.recompute()
			return
		}
	}
}

// SetQuantity overwrites a line's quantity. Requests below 1 are
// no-ops; unknown ids are ignored.
func (s *Store) SetQuantity(id uint, quantity int) {
	if quantity < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.recompute()
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.recompute()
}

// Items returns a snapshot of the current lines.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]Item, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

func (s *Store) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalQuantity
}

func (s *Store) TotalAmount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalAmount
}

// recompute derives both totals from the surviving items. Callers hold
// the mutex.
func (s *Store) recompute() {
	qty := 0
	amount := 0.0
	for _, item := range s.items {
		qty += item.Quantity
		amount += item.Price * float64(item.Quantity)
	}
	s.totalQuantity = qty
	s.totalAmount = amount
}

// Load restores a cart from the session store. A missing record yields
// an empty cart.
func Load(ctx context.Context, sessions session.Store) (*Store, error) {
	data, err := sessions.Get(ctx, session.CartKey)
	if err != nil {
		if err == session.ErrNotFound {
			return New(), nil
		}
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}

	s := New()
	s.items = items
	s.recompute()
	return s, nil
}

// Save persists the current lines to the session store.
func (s *Store) Save(ctx context.Context, sessions session.Store) error {
	data, err := json.Marshal(s.Items())
	if err != nil {
		return err
	}
	return sessions.Set(ctx, session.CartKey, data)
}
