package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"chromaprint/internal/domain/entities"
	"chromaprint/internal/usecase/interfaces"
)

// ErrLoginFailed is the single reason reported for any failed login. The
// message never distinguishes which credential was wrong.
var ErrLoginFailed = errors.New("login failed")

// AuthSession is the process-wide store of the current token and identity.
//
// Lifecycle: empty at start, populated per successful Login (last completed
// write wins), cleared by Logout. Readers must ask at the moment of use; the
// session is the only state mutated from outside the workflow.
type AuthSession struct {
	gateway interfaces.IAuthGateway

	mu          sync.RWMutex
	token       string
	user        *entities.User
	subscribers []func(*entities.User)
}

func NewAuthSession(gateway interfaces.IAuthGateway) *AuthSession {
	return &AuthSession{gateway: gateway}
}

// Login exchanges credentials for a session. Every non-success outcome,
// transport failure included, is normalized to ErrLoginFailed.
func (s *AuthSession) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrLoginFailed
	}

	token, user, err := s.gateway.Login(ctx, email, password)
	if err != nil || token == "" {
		log.Printf("[auth][session] login rejected email=%s", email)
		return ErrLoginFailed
	}

	s.mu.Lock()
	s.token = token
	u := user
	s.user = &u
	subs := append([]func(*entities.User){}, s.subscribers...)
	s.mu.Unlock()

	log.Printf("[auth][session] login ok email=%s", user.Email)
	for _, fn := range subs {
		fn(&u)
	}
	return nil
}

// Logout clears the session and notifies subscribers with a nil identity.
func (s *AuthSession) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	subs := append([]func(*entities.User){}, s.subscribers...)
	s.mu.Unlock()

	log.Printf("[auth][session] logout")
	for _, fn := range subs {
		fn(nil)
	}
}

func (s *AuthSession) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *AuthSession) Authenticated() bool {
	return s.Token() != ""
}

// User returns the current identity, if any.
func (s *AuthSession) User() (entities.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return entities.User{}, false
	}
	return *s.user, true
}

// Credentials returns the token and identity together, read atomically.
func (s *AuthSession) Credentials() (string, entities.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || s.user == nil {
		return "", entities.User{}, false
	}
	return s.token, *s.user, true
}

// Subscribe registers fn to run after every identity change. A nil user means
// the session was cleared.
func (s *AuthSession) Subscribe(fn func(*entities.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}
