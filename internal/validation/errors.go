// Package validation holds the pure field checks run before any mutation.
//
// Checks never stop at the first failure: every problem is collected into an
// Errors list so the user can fix all of them in one go. Nothing is persisted
// when the list is non-empty.
package validation

import (
	"errors"
	"strings"
)

// ErrInvalid matches every *Error under errors.Is.
var ErrInvalid = errors.New("validation failed")

// Error carries the collected human-readable messages.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return ErrInvalid.Error() + ": " + strings.Join(e.Messages, " ")
}

func (e *Error) Is(target error) bool { return target == ErrInvalid }

// Errors accumulates validation messages in the order they were found.
type Errors struct {
	msgs []string
}

func (e *Errors) Add(msg string) { e.msgs = append(e.msgs, msg) }

func (e *Errors) Empty() bool { return len(e.msgs) == 0 }

// Err returns nil when nothing was collected, otherwise an *Error holding a
// copy of the messages.
func (e *Errors) Err() error {
	if e.Empty() {
		return nil
	}
	return &Error{Messages: append([]string(nil), e.msgs...)}
}

// Messages extracts the message list from err, or nil if err is not a
// validation error.
func Messages(err error) []string {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Messages
	}
	return nil
}
