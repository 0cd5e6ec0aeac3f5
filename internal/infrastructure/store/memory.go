package store

import (
	"sync"

	"github.com/google/uuid"

	"chromaprint/internal/domain/entities"
)

// Memory holds the stub backend's session tokens and submitted orders. The
// demo keeps no state across restarts.
type Memory struct {
	mu     sync.Mutex
	tokens map[string]entities.User
	orders map[string][]entities.Order
}

func NewMemory() *Memory {
	return &Memory{
		tokens: make(map[string]entities.User),
		orders: make(map[string][]entities.Order),
	}
}

// IssueToken mints an opaque credential bound to the given identity.
func (m *Memory) IssueToken(user entities.User) string {
	token := uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = user
	return token
}

// UserForToken resolves a previously issued token.
func (m *Memory) UserForToken(token string) (entities.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.tokens[token]
	return u, ok
}

// AppendOrder records a submitted quote against the account's history.
func (m *Memory) AppendOrder(email string, order entities.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[email] = append(m.orders[email], order)
}

// OrdersByEmail returns the account's history in submission order.
func (m *Memory) OrdersByEmail(email string) []entities.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	src := m.orders[email]
	out := make([]entities.Order, len(src))
	copy(out, src)
	return out
}
