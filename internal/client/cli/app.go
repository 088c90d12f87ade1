package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/term"

	"github.com/dmitrijs2005/hradmin/internal/client/client"
	"github.com/dmitrijs2005/hradmin/internal/client/config"
	"github.com/dmitrijs2005/hradmin/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/hradmin/internal/client/services"
	"github.com/dmitrijs2005/hradmin/internal/common"
	"github.com/dmitrijs2005/hradmin/internal/cryptox"
	"github.com/dmitrijs2005/hradmin/internal/filex"
	"github.com/dmitrijs2005/hradmin/internal/logging"
	"github.com/dmitrijs2005/hradmin/internal/session"
)

const historyFile = "history"

// Streams are the standard streams of the process.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns os.Stdin, os.Stdout and os.Stderr.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// syncWriter serializes writes from the shell and the session watcher.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

type App struct {
	config *config.Config
	log    logging.Logger
	cipher *cryptox.Cipher

	sessions   *session.Manager
	auth       services.AuthService
	contracts  services.ContractService
	workspaces services.WorkspaceService
	directory  services.DirectoryService
	schedules  services.ScheduleService

	in      LineReader
	out     io.Writer
	ttyFd   int
	tty     bool
	closers []func() error

	expiredShown atomic.Bool
}

// NewApp wires the API client, the session store and the services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, s Streams) (*App, error) {
	cipher, err := cryptox.NewCipher(c.CipherKey)
	if err != nil {
		return nil, err
	}

	api, err := client.NewHTTPClient(c.APIEndpoint,
		client.WithTimeout(c.RequestTimeout),
		client.WithRetry(c.RetryAttempts, 200*time.Millisecond),
		client.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	a := &App{config: c, log: log, cipher: cipher, out: &syncWriter{w: s.Out}}

	var store session.Store
	historyPath := ""
	if c.Ephemeral {
		store = session.NewMemoryStore()
	} else {
		dir, err := filex.EnsureDir(c.DataDir)
		if err != nil {
			return nil, err
		}
		db, err := client.InitDatabase(ctx, filepath.Join(dir, c.DatabaseName))
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		store = sessions.NewSQLiteStore(db, c.CipherKey)
		historyPath = filepath.Join(dir, historyFile)
	}

	a.sessions = session.NewManager(store, api,
		session.WithBuffer(c.RefreshBuffer),
		session.WithRefreshTimeout(c.RequestTimeout),
		session.WithLogger(log),
	)
	api.SetTokenSource(a.sessions)

	a.auth = services.NewAuthService(api, cipher, a.sessions, log)
	a.contracts = services.NewContractService(api, cipher, log)
	a.workspaces = services.NewWorkspaceService(api)
	a.directory = services.NewDirectoryService(api)
	a.schedules = services.NewScheduleService(api, log)

	if f, ok := s.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		lr := newLinerReader(historyPath)
		a.in, a.tty, a.ttyFd = lr, true, int(f.Fd())
		a.closers = append(a.closers, lr.Close)
	} else {
		a.in = NewScanReader(s.In, a.out)
	}

	return a, nil
}

// Close releases the terminal and the database.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) ask(prompt string) (string, error) {
	return GetSimpleText(a.in, prompt)
}

// password reads without echo on a terminal and as a plain line otherwise.
func (a *App) password() ([]byte, error) {
	if a.tty {
		return GetPassword(a.out, a.ttyFd)
	}
	line, err := a.in.Prompt("Password: ")
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// describe turns an error into a message for the user.
func describe(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, common.ErrNotAuthenticated):
		return "not logged in: run 'login' first"
	case errors.Is(err, common.ErrRefreshAccessToken):
		return "session expired: run 'login' to sign in again"
	case errors.Is(err, client.ErrUnavailable):
		return "API server is unreachable: " + err.Error()
	case errors.Is(err, client.ErrUnauthorized):
		return "not authorized: run 'login' to sign in again"
	case errors.Is(err, client.ErrForbidden):
		return "permission denied"
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	default:
		return err.Error()
	}
}

func (a *App) fail(err error) {
	a.println("error:", describe(err))
}
