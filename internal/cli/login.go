package cli

import (
	"context"
	"errors"
	"io"

	"github.com/dmitrijs2005/gophdiary/internal/auth"
	"github.com/dmitrijs2005/gophdiary/internal/common"
)

// getPassword is an indirection used to facilitate testing.
var getPassword = GetPassword

// Unlock runs the login form until the gate accepts a password.
//
// On a first run the entered password becomes the diary password; afterwards
// it must match the stored one. Empty input and wrong passwords are reported
// and asked again. Unlock returns false with a nil error when input ends
// before the diary is unlocked, which the caller treats as a normal exit.
func (a *App) Unlock(ctx context.Context) (bool, error) {
	for !a.gate.Accepted() {
		mode := a.gate.Mode()

		label := "Login"
		if mode == auth.StateFirstRunCreate {
			label = "Create Password"
		}

		password, err := getPassword(a.reader, "["+label+"] Enter Password: ", a.out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				a.log.Info(ctx, "login abandoned")
				return false, nil
			}
			return false, err
		}

		_, err = a.gate.Submit(password)
		common.WipeByteArray(password)

		switch {
		case err == nil:
			if mode == auth.StateFirstRunCreate {
				a.success("Password created successfully!")
			}
			a.log.Info(ctx, "diary unlocked", "first_run", mode == auth.StateFirstRunCreate)

		case errors.Is(err, common.ErrEmptyPassword):
			a.warn("Input Error: Password cannot be empty.")

		case errors.Is(err, common.ErrAccessDenied):
			a.warn("Access Denied: Incorrect Password!")
			a.log.Warn(ctx, "incorrect password")

		default:
			a.fail("Could not save password: " + err.Error())
			a.log.Error(ctx, "saving password failed", "path", a.auth.Path(), "err", err)
		}
	}
	return true, nil
}
