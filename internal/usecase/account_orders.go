package usecase

import (
	"context"
	"log"
	"sync"

	"chromaprint/internal/domain/entities"
	"chromaprint/internal/usecase/interfaces"
)

// AccountOrders is a read-only projection of the authenticated user's order
// history. It re-fetches whenever the identity changes and never while no
// user is present. A fetch failure degrades to an empty list, never a stale
// one and never a surfaced error.
type AccountOrders struct {
	gateway interfaces.IAccountGateway

	mu      sync.Mutex
	orders  []entities.Order
	loadSeq uint64
}

func NewAccountOrders(gateway interfaces.IAccountGateway) *AccountOrders {
	return &AccountOrders{gateway: gateway}
}

// Load replaces the full order list for the given email. Loads carry a
// sequence number so a late response for a superseded identity cannot
// overwrite a newer list.
func (a *AccountOrders) Load(ctx context.Context, email string) {
	a.mu.Lock()
	a.loadSeq++
	seq := a.loadSeq
	a.mu.Unlock()

	items, err := a.gateway.ListOrders(ctx, email)

	a.mu.Lock()
	defer a.mu.Unlock()
	if seq != a.loadSeq {
		return
	}
	if err != nil {
		log.Printf("[account][orders] fetch failed email=%s err=%v", email, err)
		a.orders = nil
		return
	}
	a.orders = items
	log.Printf("[account][orders] loaded email=%s count=%d", email, len(items))
}

// Orders returns the current list; empty until a user has logged in.
func (a *AccountOrders) Orders() []entities.Order {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]entities.Order, len(a.orders))
	copy(out, a.orders)
	return out
}

// FollowSession re-loads the projection on every identity change and clears
// it when the session ends.
func (a *AccountOrders) FollowSession(session *AuthSession) {
	session.Subscribe(func(user *entities.User) {
		if user == nil {
			a.mu.Lock()
			a.loadSeq++
			a.orders = nil
			a.mu.Unlock()
			return
		}
		a.Load(context.Background(), user.Email)
	})
}
