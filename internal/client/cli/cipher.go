package cli

import (
	"errors"
	"strings"
)

var errMissingValue = errors.New("missing value")

// Encrypt joins the arguments with single spaces and encrypts the result.
func (a *App) Encrypt(args []string) error {
	if len(args) == 0 {
		return errMissingValue
	}
	out, err := a.cipher.Encrypt(strings.Join(args, " "))
	if err != nil {
		return err
	}
	a.println(out)
	return nil
}

func (a *App) Decrypt(args []string) error {
	if len(args) != 1 {
		return errMissingValue
	}
	out, err := a.cipher.Decrypt(args[0])
	if err != nil {
		return err
	}
	a.println(out)
	return nil
}

func (a *App) HMAC(args []string) error {
	if len(args) == 0 {
		return errMissingValue
	}
	a.println(a.cipher.HMAC(strings.Join(args, " ")))
	return nil
}
