package usecase

import (
	"errors"
	"log"
)

// ErrAuthRequired signals that a privileged action was attempted without a
// session. It is a control signal, not a failure: the action performed no
// side effect and the login prompt was raised in its place.
var ErrAuthRequired = errors.New("authentication required")

// LoginPrompt is raised by the gate when a privileged action needs a session.
// The collaborating UI presents its login flow in response.
type LoginPrompt interface {
	PromptLogin()
}

// LoginPromptFunc adapts a plain function to LoginPrompt.
type LoginPromptFunc func()

func (f LoginPromptFunc) PromptLogin() { f() }

// AuthGate guards privileged actions (cart add, quote submit) behind the live
// session. A blocked action is dropped, not captured for replay after login:
// the user re-triggers it.
type AuthGate struct {
	session *AuthSession
	prompt  LoginPrompt
}

func NewAuthGate(session *AuthSession, prompt LoginPrompt) *AuthGate {
	return &AuthGate{session: session, prompt: prompt}
}

// Allow reports whether a privileged action may proceed. When it may not, the
// login prompt is raised exactly once per call.
func (g *AuthGate) Allow() bool {
	if g.session.Authenticated() {
		return true
	}
	log.Printf("[auth][gate] privileged action blocked, prompting login")
	if g.prompt != nil {
		g.prompt.PromptLogin()
	}
	return false
}
