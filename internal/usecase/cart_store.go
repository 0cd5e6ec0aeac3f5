package usecase

import (
	"sync"

	"chromaprint/internal/domain/entities"
)

// CartStore is an insertion-ordered collection of selected products. It is a
// pure collection with no knowledge of authentication; duplicates are
// permitted and the count is derived from the items.
type CartStore struct {
	mu    sync.Mutex
	items []entities.Product
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

func (c *CartStore) Add(item entities.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// Items returns the cart contents in insertion order.
func (c *CartStore) Items() []entities.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entities.Product, len(c.items))
	copy(out, c.items)
	return out
}

func (c *CartStore) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// GatedCart applies the auth gate in front of cart mutation, keeping
// CartStore itself auth-free.
type GatedCart struct {
	cart *CartStore
	gate *AuthGate
}

func NewGatedCart(cart *CartStore, gate *AuthGate) *GatedCart {
	return &GatedCart{cart: cart, gate: gate}
}

// Add appends the item when a session exists. Without one it leaves the cart
// untouched and returns ErrAuthRequired after raising the login prompt.
func (c *GatedCart) Add(item entities.Product) error {
	if !c.gate.Allow() {
		return ErrAuthRequired
	}
	c.cart.Add(item)
	return nil
}
