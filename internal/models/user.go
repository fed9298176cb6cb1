// Package models defines the records Fundraise persists and the values it
// passes between the CLI and the services.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Users are never updated or deleted.
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	PhoneNumber  string `json:"phone_number"`
}

// DisplayName is "First Last (id)", the owner label used in listings.
func (u User) DisplayName() string {
	return fmt.Sprintf("%s %s (%d)", u.FirstName, u.LastName, u.ID)
}

// Session is the authenticated state held by the CLI after a successful
// login. A nil *Session means the caller is anonymous.
type Session struct {
	ID        uuid.UUID
	User      User
	StartedAt time.Time
}

// NewSession opens a session for u.
func NewSession(u User) *Session {
	return &Session{ID: uuid.New(), User: u, StartedAt: time.Now().UTC()}
}

// UserID returns the session owner's id, or 0 for a nil session.
func (s *Session) UserID() int64 {
	if s == nil {
		return 0
	}
	return s.User.ID
}

// NextUserID returns max(id)+1, or 1 for an empty slice.
func NextUserID(users []User) int64 {
	var top int64
	for _, u := range users {
		if u.ID > top {
			top = u.ID
		}
	}
	return top + 1
}
