package session

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/heartmarshall/eventorias-backend/internal/client"
	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

//go:generate moq -out authenticator_mock_test.go -pkg session . authenticator

// Invalid transitions.
var (
	ErrBusy     = errors.New("session: an attempt is already in progress")
	ErrSignedIn = errors.New("session: already signed in")
)

const changesBuffer = 8

type authenticator interface {
	SignIn(ctx context.Context, email, password string) (*client.AuthResult, error)
	SignUp(ctx context.Context, email, password string) (*client.AuthResult, error)
	Register(ctx context.Context, in client.RegisterRequest) (*client.AuthResult, error)
	SignInWithGoogle(ctx context.Context, idToken string) (*client.AuthResult, error)
	Profile(ctx context.Context) (*domain.User, error)
	SetToken(token string)
}

type tokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// GoogleSignIn runs the external Google sign-in flow and returns the ID
// token it produced.
type GoogleSignIn func(ctx context.Context) (string, error)

// Machine drives the session through Unauthenticated, Loading,
// Authenticated and Error. It is safe for concurrent use; only one attempt
// runs at a time.
type Machine struct {
	auth  authenticator
	store tokenStore
	log   zerolog.Logger

	mu      sync.Mutex
	state   State
	watches map[chan State]struct{}
}

// NewMachine creates a machine in the Unauthenticated state.
func NewMachine(auth authenticator, store tokenStore, logger zerolog.Logger) *Machine {
	return &Machine{
		auth:    auth,
		store:   store,
		log:     logger.With().Str("component", "session").Logger(),
		state:   unauthenticated(),
		watches: make(map[chan State]struct{}),
	}
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Changes streams every later transition. Slow readers miss transitions
// rather than blocking the machine. The channel closes when ctx ends.
func (m *Machine) Changes(ctx context.Context) <-chan State {
	ch := make(chan State, changesBuffer)

	m.mu.Lock()
	m.watches[ch] = struct{}{}
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.watches, ch)
		m.mu.Unlock()
		close(ch)
	}()
	return ch
}

// Restore resumes a stored session. A token the server no longer accepts is
// discarded; any other failure leaves it stored and is returned.
func (m *Machine) Restore(ctx context.Context) (State, error) {
	token, err := m.store.Load()
	if err != nil || token == "" {
		return m.State(), err
	}

	m.auth.SetToken(token)
	user, err := m.auth.Profile(ctx)
	switch {
	case err == nil:
		m.set(authenticated(*user))
		m.log.Debug().Str("user_id", user.ID.String()).Msg("session restored")
		return m.State(), nil
	case errors.Is(err, domain.ErrUnauthorized):
		m.auth.SetToken("")
		if clearErr := m.store.Clear(); clearErr != nil {
			m.log.Warn().Err(clearErr).Msg("clear stale token")
		}
		return m.State(), nil
	default:
		m.auth.SetToken("")
		return m.State(), err
	}
}

// SignIn signs in with email and password.
func (m *Machine) SignIn(ctx context.Context, email, password string) (State, error) {
	return m.attempt(ctx, "sign in", func(ctx context.Context) (*client.AuthResult, error) {
		return m.auth.SignIn(ctx, email, password)
	})
}

// SignUp creates an account without a profile and signs in.
func (m *Machine) SignUp(ctx context.Context, email, password string) (State, error) {
	return m.attempt(ctx, "sign up", func(ctx context.Context) (*client.AuthResult, error) {
		return m.auth.SignUp(ctx, email, password)
	})
}

// Register creates an account with its profile and signs in.
func (m *Machine) Register(ctx context.Context, in client.RegisterRequest) (State, error) {
	return m.attempt(ctx, "register", func(ctx context.Context) (*client.AuthResult, error) {
		return m.auth.Register(ctx, in)
	})
}

// SignInWithGoogle runs signIn to obtain an ID token and exchanges it with
// the server. A nil or failing signIn ends in Error without a server call.
func (m *Machine) SignInWithGoogle(ctx context.Context, signIn GoogleSignIn) (State, error) {
	return m.attempt(ctx, "google sign in", func(ctx context.Context) (*client.AuthResult, error) {
		if signIn == nil {
			return nil, errGoogleCancelled
		}
		idToken, err := signIn(ctx)
		if err != nil {
			return nil, &googleFlowError{err: err}
		}
		if idToken == "" {
			return nil, errGoogleCancelled
		}
		return m.auth.SignInWithGoogle(ctx, idToken)
	})
}

// SignOut forgets the token and returns to Unauthenticated.
func (m *Machine) SignOut() error {
	m.mu.Lock()
	if m.state.Kind == Loading {
		m.mu.Unlock()
		return ErrBusy
	}
	m.mu.Unlock()

	m.auth.SetToken("")
	err := m.store.Clear()
	m.set(unauthenticated())
	m.log.Debug().Msg("signed out")
	return err
}

func (m *Machine) attempt(ctx context.Context, op string, call func(ctx context.Context) (*client.AuthResult, error)) (State, error) {
	if err := m.begin(); err != nil {
		return m.State(), err
	}

	res, err := call(ctx)
	if err != nil {
		msg := failureMessage(op, err)
		m.log.Debug().Err(err).Str("op", op).Msg("authentication failed")
		m.set(failed(msg))
		return m.State(), nil
	}

	if saveErr := m.store.Save(res.AccessToken); saveErr != nil {
		m.log.Warn().Err(saveErr).Msg("persist session token")
	}
	m.set(authenticated(res.User))
	m.log.Debug().Str("op", op).Str("user_id", res.User.ID.String()).Msg("authenticated")
	return m.State(), nil
}

// begin moves Unauthenticated or Error to Loading.
func (m *Machine) begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state.Kind {
	case Loading:
		return ErrBusy
	case Authenticated:
		return ErrSignedIn
	}
	m.transitionLocked(loading())
	return nil
}

func (m *Machine) set(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitionLocked(s)
}

func (m *Machine) transitionLocked(s State) {
	m.state = s
	for ch := range m.watches {
		select {
		case ch <- s:
		default:
			m.log.Debug().Str("state", s.Kind.String()).Msg("session watcher lagging")
		}
	}
}
