package main

import (
	"context"
	"errors"
	"mime"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/eventorias-backend/internal/client"
	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/internal/session"
)

const requestTimeout = 30 * time.Second

type options struct {
	serviceURL  string
	sessionFile string
	debug       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "eventorias",
		Short:         "Browse, watch and publish Eventorias events",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        cmd.ErrOrStderr(),
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})
			if opts.debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.serviceURL, "service-url",
		getEnv("EVENTORIAS_URL", "http://localhost:8080"), "Base URL of the Eventorias server")
	root.PersistentFlags().StringVar(&opts.sessionFile, "session-file",
		getEnv("EVENTORIAS_SESSION_FILE", defaultSessionFile()), "Where the access token is kept")
	root.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Enable debug logging")

	root.AddCommand(
		newSignUpCmd(opts),
		newRegisterCmd(opts),
		newLoginCmd(opts),
		newLoginGoogleCmd(opts),
		newLogoutCmd(opts),
		newProfileCmd(opts),
		newNotificationsCmd(opts),
		newEventsCmd(opts),
	)
	return root
}

// env is what a command works with: the API client and the session bound
// to it.
type env struct {
	client  *client.Client
	session *session.Machine
}

// open builds the client and session. With restore set, a stored token is
// resumed first.
func (o *options) open(ctx context.Context, restore bool) (*env, error) {
	c := client.New(o.serviceURL, client.WithTimeout(requestTimeout))
	m := session.NewMachine(c, session.NewFileStore(o.sessionFile), log.Logger)

	if restore {
		st, err := m.Restore(ctx)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("state", st.Kind.String()).Msg("session")
	}
	return &env{client: c, session: m}, nil
}

// requireUser opens a restored session and fails unless it is signed in.
func (o *options) requireUser(ctx context.Context) (*env, error) {
	e, err := o.open(ctx, true)
	if err != nil {
		return nil, err
	}
	if e.session.State().Kind != session.Authenticated {
		return nil, errors.New("not signed in, run `eventorias login` first")
	}
	return e, nil
}

// outcome turns the final state of an attempt into a command error.
func outcome(st session.State, err error) (*domain.User, error) {
	if err != nil {
		return nil, err
	}
	if st.Kind == session.Error {
		return nil, errors.New(st.Message)
	}
	return st.User, nil
}

// openFile reads a local file for upload. The caller closes it.
func openFile(path string) (*domain.File, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &domain.File{Name: filepath.Base(path), ContentType: ct, Body: f}, func() { f.Close() }, nil //nolint:errcheck
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".eventorias", "session.json")
	}
	return filepath.Join(home, ".eventorias", "session.json")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
