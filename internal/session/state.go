// Package session holds the client-side authentication state machine.
package session

import "github.com/heartmarshall/eventorias-backend/internal/domain"

// Kind enumerates the session states.
type Kind int

const (
	Unauthenticated Kind = iota
	Loading
	Authenticated
	Error
)

func (k Kind) String() string {
	switch k {
	case Unauthenticated:
		return "unauthenticated"
	case Loading:
		return "loading"
	case Authenticated:
		return "authenticated"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// State is a snapshot of the session. User is set only when Authenticated;
// Message only when Error.
type State struct {
	Kind    Kind
	User    *domain.User
	Message string
}

func unauthenticated() State { return State{Kind: Unauthenticated} }

func loading() State { return State{Kind: Loading} }

func authenticated(u domain.User) State { return State{Kind: Authenticated, User: &u} }

func failed(msg string) State { return State{Kind: Error, Message: msg} }
