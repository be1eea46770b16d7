// Package alerts holds user price alerts and evaluates them against the
// catalog. The store is the only mutable collaborator in the service:
// writes are serialized behind a mutex, reads hand out copies.
package alerts

import (
	"sync"
	"time"
)

// Alert is a standing request to be notified when a product can be bought
// at or below a target price.
type Alert struct {
	ID          int       `json:"id"`
	ProductName string    `json:"productName"`
	TargetPrice float64   `json:"targetPrice"`
	UserEmail   string    `json:"userEmail"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Store is an append-only, in-memory alert collection safe for concurrent
// use.
type Store struct {
	mu     sync.Mutex
	alerts []Alert
	nextID int
}

// NewStore creates an empty alert store.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Add appends an alert and returns it with its assigned ID.
func (s *Store) Add(productName string, targetPrice float64, userEmail string) Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := Alert{
		ID:          s.nextID,
		ProductName: productName,
		TargetPrice: targetPrice,
		UserEmail:   userEmail,
		CreatedAt:   time.Now().UTC(),
	}
	s.nextID++
	s.alerts = append(s.alerts, a)
	return a
}

// All returns a copy of every stored alert in insertion order.
func (s *Store) All() []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Alert(nil), s.alerts...)
}

// Len returns the number of stored alerts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.alerts)
}
