package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/fundraise/internal/common"
	"github.com/dmitrijs2005/fundraise/internal/models"
	"github.com/dmitrijs2005/fundraise/internal/services"
	"github.com/dmitrijs2005/fundraise/internal/validation"
)

// Register asks for the registration form and creates the account.
// Passwords are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	a.printHeading("Registration")

	var in services.RegisterInput
	var err error

	if in.FirstName, err = getLine(a.reader, "First name: ", a.out); err != nil {
		return err
	}
	if in.LastName, err = getLine(a.reader, "Last name: ", a.out); err != nil {
		return err
	}
	if in.Email, err = getLine(a.reader, "Email: ", a.out); err != nil {
		return err
	}

	in.Password, err = getPassword(a.reader, "Password: ", a.out)
	defer common.WipeByteArray(in.Password)
	if err != nil {
		return err
	}
	in.ConfirmPassword, err = getPassword(a.reader, "Confirm password: ", a.out)
	defer common.WipeByteArray(in.ConfirmPassword)
	if err != nil {
		return err
	}

	if in.PhoneNumber, err = getLine(a.reader, "Phone number: ", a.out); err != nil {
		return err
	}

	_, err = a.authService.Register(ctx, in)
	if errors.Is(err, validation.ErrInvalid) {
		a.printInvalid("Registration", err)
		return nil
	}
	if err != nil {
		return err
	}

	a.printSuccess("Registration successful. Please login to continue.")
	return nil
}

// Login asks for credentials and, on success, starts the session used by the
// project screens.
func (a *App) Login(ctx context.Context) error {
	a.printHeading("Login")

	email, err := getLine(a.reader, "Email: ", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password: ", a.out)
	defer common.WipeByteArray(password)
	if err != nil {
		return err
	}

	u, err := a.authService.Login(ctx, email, password)
	if errors.Is(err, common.ErrInvalidCredentials) {
		a.printFailure("Invalid email or password.")
		return nil
	}
	if err != nil {
		return err
	}

	a.session = models.NewSession(*u)
	a.log = a.log.With("session_id", a.session.ID.String(), "user_id", u.ID)
	a.log.Debug(ctx, "session opened")

	a.printSuccess("Login successful.")
	a.printSuccess("Welcome " + u.FirstName + "!")
	return nil
}
