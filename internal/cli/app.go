package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/auth"
	"github.com/dmitrijs2005/gophdiary/internal/config"
	"github.com/dmitrijs2005/gophdiary/internal/diary"
	"github.com/dmitrijs2005/gophdiary/internal/entries"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	auth    *auth.Authenticator
	gate    *auth.Gate
	store   *entries.Store
	session *diary.Session
	reader  *bufio.Reader
	out     io.Writer
	errOut  io.Writer
	now     func() time.Time
}

// NewApp builds an App over the OS filesystem rooted at c.BaseDir, reading
// from stdin and writing to stdout/stderr.
func NewApp(c *config.Config, log logging.Logger) *App {
	return newApp(c, log, osfs.New(c.BaseDir), os.Stdin, os.Stdout, os.Stderr)
}

func newApp(c *config.Config, log logging.Logger, fsys billy.Filesystem, in io.Reader, out, errOut io.Writer) *App {
	a := auth.NewAuthenticator(fsys, c.CredentialPath())
	store := entries.NewStore(fsys, c.DataDir)

	return &App{
		config:  c,
		log:     log,
		auth:    a,
		gate:    auth.NewGate(a),
		store:   store,
		session: diary.NewSession(store),
		reader:  bufio.NewReader(in),
		out:     out,
		errOut:  errOut,
		now:     time.Now,
	}
}

// Run unlocks the diary and starts the REPL on today's entry. It returns nil
// when the user leaves, including when the login is abandoned.
func (a *App) Run(ctx context.Context) error {
	ok, err := a.Unlock(ctx)
	if err != nil || !ok {
		return err
	}

	a.session.Open(a.now())
	a.printStatus()

	runREPL(ctx, a, a.prompt, a.reader, a.out)
	a.log.Debug(ctx, "session closed")
	return nil
}

func (a *App) prompt() string {
	return a.session.Date().Format(entries.DateLayout)
}
