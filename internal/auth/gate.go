package auth

import (
	"fmt"

	"github.com/dmitrijs2005/gophdiary/internal/common"
)

// State is a step of the login flow.
type State int

const (
	StateAwaitingInput State = iota
	StateFirstRunCreate
	StateVerify
	StateAccepted
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting_input"
	case StateFirstRunCreate:
		return "first_run_create"
	case StateVerify:
		return "verify"
	case StateAccepted:
		return "accepted"
	case StateRejected:
		return "rejected"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Credentials is the subset of Authenticator the gate needs.
type Credentials interface {
	IsFirstRun() bool
	SavePassword(password []byte) error
	CheckPassword(password []byte) bool
}

// Gate runs the login state machine over a Credentials store.
//
// Submit may be called any number of times; a rejected password leaves the
// gate waiting for the next attempt. Once accepted, the gate stays accepted.
type Gate struct {
	creds Credentials
	state State
}

func NewGate(creds Credentials) *Gate {
	return &Gate{creds: creds, state: StateAwaitingInput}
}

// State returns the current state. Between attempts it is always
// StateAwaitingInput or StateAccepted.
func (g *Gate) State() State {
	return g.state
}

// Mode reports what the next submission will do: StateFirstRunCreate when no
// credential exists yet, StateVerify otherwise.
func (g *Gate) Mode() State {
	if g.creds.IsFirstRun() {
		return StateFirstRunCreate
	}
	return StateVerify
}

// Accepted reports whether the gate has been passed.
func (g *Gate) Accepted() bool {
	return g.state == StateAccepted
}

// Submit processes one password attempt and returns the resulting state.
//
// Errors:
//   - common.ErrEmptyPassword: empty input, nothing changes.
//   - common.ErrAccessDenied: the password does not match; StateRejected is
//     returned and the gate goes back to waiting.
//   - common.ErrIO: the first-run password could not be stored.
func (g *Gate) Submit(password []byte) (State, error) {
	if g.state == StateAccepted {
		return StateAccepted, nil
	}
	if len(password) == 0 {
		return g.state, common.ErrEmptyPassword
	}

	g.state = g.Mode()

	switch g.state {
	case StateFirstRunCreate:
		if err := g.creds.SavePassword(password); err != nil {
			g.state = StateAwaitingInput
			return g.state, err
		}
		g.state = StateAccepted
		return g.state, nil

	default:
		if g.creds.CheckPassword(password) {
			g.state = StateAccepted
			return g.state, nil
		}
		g.state = StateAwaitingInput
		return StateRejected, common.ErrAccessDenied
	}
}
