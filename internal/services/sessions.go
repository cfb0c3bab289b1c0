package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/themizzi/saucesuite/internal/catalog"
	"github.com/themizzi/saucesuite/internal/models"
)

// ErrSessionNotFound is returned for an unknown or ended session token
var ErrSessionNotFound = errors.New("session not found")

// Session is one signed-in browser
type Session struct {
	Token    string
	Username string
	// Cart holds catalog item ids in the order they were added.
	Cart     []int
	Customer *models.CustomerInfo
}

// SessionStore keeps signed-in sessions and their carts
type SessionStore interface {
	Create(username string) (*Session, error)
	Get(token string) (*Session, error)
	Delete(token string)
	AddToCart(token string, itemID int) (int, error)
	RemoveFromCart(token string, itemID int) (int, error)
	ResetCart(token string) error
	SetCustomer(token string, customer models.CustomerInfo) error
}

// MemorySessionStore is a SessionStore held in process memory
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewMemorySessionStore creates an empty store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: map[string]*Session{}}
}

// Create starts a session for username
func (s *MemorySessionStore) Create(username string) (*Session, error) {
	sess := &Session{Token: uuid.NewString(), Username: username}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	return sess.clone(), nil
}

// Get returns a copy of the session
func (s *MemorySessionStore) Get(token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess.clone(), nil
}

// Delete ends the session
func (s *MemorySessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// AddToCart adds the item once and returns the cart size
func (s *MemorySessionStore) AddToCart(token string, itemID int) (int, error) {
	if _, err := catalog.FindByID(itemID); err != nil {
		return 0, err
	}
	return s.update(token, func(sess *Session) {
		for _, id := range sess.Cart {
			if id == itemID {
				return
			}
		}
		sess.Cart = append(sess.Cart, itemID)
	})
}

// RemoveFromCart removes the item if present and returns the cart size
func (s *MemorySessionStore) RemoveFromCart(token string, itemID int) (int, error) {
	return s.update(token, func(sess *Session) {
		kept := sess.Cart[:0]
		for _, id := range sess.Cart {
			if id != itemID {
				kept = append(kept, id)
			}
		}
		sess.Cart = kept
	})
}

// ResetCart empties the cart and forgets the checkout form
func (s *MemorySessionStore) ResetCart(token string) error {
	_, err := s.update(token, func(sess *Session) {
		sess.Cart = nil
		sess.Customer = nil
	})
	return err
}

// SetCustomer records the checkout form for the session
func (s *MemorySessionStore) SetCustomer(token string, customer models.CustomerInfo) error {
	_, err := s.update(token, func(sess *Session) {
		c := customer
		sess.Customer = &c
	})
	return err
}

func (s *MemorySessionStore) update(token string, fn func(*Session)) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return 0, ErrSessionNotFound
	}
	fn(sess)
	return len(sess.Cart), nil
}

func (s *Session) clone() *Session {
	c := *s
	c.Cart = append([]int(nil), s.Cart...)
	if s.Customer != nil {
		cust := *s.Customer
		c.Customer = &cust
	}
	return &c
}

// CartItems resolves the cart ids to catalog items, in cart order
func (s *Session) CartItems() ([]catalog.Item, error) {
	items := make([]catalog.Item, 0, len(s.Cart))
	for _, id := range s.Cart {
		it, err := catalog.FindByID(id)
		if err != nil {
			return nil, fmt.Errorf("cart of %s: %w", s.Username, err)
		}
		items = append(items, it)
	}
	return items, nil
}

// InCart reports whether the item is in the cart
func (s *Session) InCart(itemID int) bool {
	for _, id := range s.Cart {
		if id == itemID {
			return true
		}
	}
	return false
}
