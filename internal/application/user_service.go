package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fajarp/task-tracker-api/internal/domain/entity"
	repo "github.com/fajarp/task-tracker-api/internal/domain/repository"
	"github.com/fajarp/task-tracker-api/pkg/helpers"
)

var (
	// ErrUserExists is returned when the requested username is taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so error variance cannot be used to enumerate users.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrBirthdateTooRecent is returned when the user is under the
	// minimum age.
	ErrBirthdateTooRecent = errors.New("birthdate too recent")
)

// minAge is the minimum account age in years.
const minAge = 10

// UserService implements sign-up and sign-in.
type UserService struct {
	Repo   repo.UserRepository
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Tokens: tokens, Logger: logger}
}

// SignUpInput is the validated sign-up payload.
type SignUpInput struct {
	Username    string
	Password    string
	Name        string
	Birthdate   time.Time
	Nationality string
}

// SignInResult is returned to the client on successful sign-in.
type SignInResult struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// SignUp creates a credential record: rejects taken usernames, hashes
// the password, and assigns a generated id. The plaintext password is
// never stored or logged.
func (s *UserService) SignUp(ctx context.Context, in SignUpInput) (*entity.User, error) {
	if in.Birthdate.After(time.Now().AddDate(-minAge, 0, 0)) {
		return nil, ErrBirthdateTooRecent
	}

	if _, err := s.Repo.GetByUsername(ctx, in.Username); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		ID:          helpers.RandomID(helpers.IDLength),
		Username:    in.Username,
		Password:    hash,
		Name:        in.Name,
		Birthdate:   in.Birthdate,
		Nationality: in.Nationality,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user signed up")
	return u, nil
}

// SignIn verifies the credentials and issues a bearer token over
// {id, username}.
func (s *UserService) SignIn(ctx context.Context, username, password string) (*SignInResult, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(u.ID, u.Username)
	if err != nil {
		return nil, err
	}
	return &SignInResult{ID: u.ID, Username: u.Username, Token: token}, nil
}
