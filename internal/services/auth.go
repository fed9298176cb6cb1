package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/fundraise/internal/common"
	"github.com/dmitrijs2005/fundraise/internal/cryptox"
	"github.com/dmitrijs2005/fundraise/internal/logging"
	"github.com/dmitrijs2005/fundraise/internal/models"
	"github.com/dmitrijs2005/fundraise/internal/repositories/users"
	"github.com/dmitrijs2005/fundraise/internal/validation"
)

// RegisterInput is the registration form as entered by the user.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        []byte
	ConfirmPassword []byte
	PhoneNumber     string
}

// AuthService registers and authenticates users.
type AuthService interface {
	// Register validates in and appends a new user. Rejected input yields a
	// *validation.Error and leaves the store untouched.
	Register(ctx context.Context, in RegisterInput) (*models.User, error)

	// Login returns the user matching email and password, or
	// common.ErrInvalidCredentials without saying which part was wrong.
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
}

// seams for tests, argon2 with default params is slow
var (
	hashPassword   = cryptox.HashPassword
	verifyPassword = cryptox.VerifyPassword
)

type authService struct {
	users users.Repository
	log   logging.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(users users.Repository, log logging.Logger) AuthService {
	return &authService{users: users, log: log}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	all, err := s.users.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	fields := validation.UserFields{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
		PhoneNumber:     in.PhoneNumber,
	}
	exists := func(email string) bool {
		for _, u := range all {
			if u.Email == email {
				return true
			}
		}
		return false
	}
	if err := validation.CheckRegistration(fields, exists); err != nil {
		s.log.Debug(ctx, "registration rejected", "errors", len(validation.Messages(err)))
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := models.User{
		ID:           models.NextUserID(all),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		PhoneNumber:  in.PhoneNumber,
	}
	if err := s.users.Save(ctx, append(all, u)); err != nil {
		return nil, fmt.Errorf("save users: %w", err)
	}

	s.log.Info(ctx, "user registered", "user_id", u.ID)
	return &u, nil
}

func (s *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	all, err := s.users.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	for _, u := range all {
		if u.Email != email {
			continue
		}
		ok, err := verifyPassword(password, u.PasswordHash)
		if err != nil {
			s.log.Warn(ctx, "stored password hash is unreadable", "user_id", u.ID, "error", err)
		}
		if !ok {
			s.log.Info(ctx, "login failed", "reason", "password")
			return nil, common.ErrInvalidCredentials
		}
		s.log.Info(ctx, "login succeeded", "user_id", u.ID)
		return &u, nil
	}

	// unknown email still pays for one verification
	_, _ = verifyPassword(password, s.dummy())
	s.log.Info(ctx, "login failed", "reason", "email")
	return nil, common.ErrInvalidCredentials
}

func (s *authService) dummy() string {
	s.dummyOnce.Do(func() {
		h, err := hashPassword(common.GenerateRandByteArray(common.SaltSize))
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}
