package application_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fajarp/task-tracker-api/internal/application"
	"github.com/fajarp/task-tracker-api/internal/infrastructure/memory"
	"github.com/fajarp/task-tracker-api/pkg/helpers"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func signUpInput() application.SignUpInput {
	return application.SignUpInput{
		Username:    "50Kobo",
		Password:    "Kobo3602019@",
		Name:        "Kobo",
		Birthdate:   time.Date(2010, time.December, 1, 0, 0, 0, 0, time.UTC),
		Nationality: "Nigerian",
	}
}

func TestSignUp_HashesPassword(t *testing.T) {
	t.Parallel()

	svc := application.NewUserService(memory.NewUserRepository(), helpers.NewTokenManager("s", time.Hour), quietLogger())

	u, err := svc.SignUp(context.Background(), signUpInput())
	if err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
	if u.Password == "Kobo3602019@" {
		t.Fatalf("stored password equals plaintext")
	}
	if len(u.ID) != helpers.IDLength {
		t.Fatalf("id %q has length %d, want %d", u.ID, len(u.ID), helpers.IDLength)
	}
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	t.Parallel()

	svc := application.NewUserService(memory.NewUserRepository(), helpers.NewTokenManager("s", time.Hour), quietLogger())

	if _, err := svc.SignUp(context.Background(), signUpInput()); err != nil {
		t.Fatalf("first SignUp error: %v", err)
	}
	_, err := svc.SignUp(context.Background(), signUpInput())
	if !errors.Is(err, application.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestSignUp_BirthdateTooRecent(t *testing.T) {
	t.Parallel()

	svc := application.NewUserService(memory.NewUserRepository(), helpers.NewTokenManager("s", time.Hour), quietLogger())

	in := signUpInput()
	in.Birthdate = time.Now().AddDate(-5, 0, 0)
	_, err := svc.SignUp(context.Background(), in)
	if !errors.Is(err, application.ErrBirthdateTooRecent) {
		t.Fatalf("expected ErrBirthdateTooRecent, got %v", err)
	}
}

func TestSignIn_TokenRoundTrip(t *testing.T) {
	t.Parallel()

	tokens := helpers.NewTokenManager("s", time.Hour)
	svc := application.NewUserService(memory.NewUserRepository(), tokens, quietLogger())

	u, err := svc.SignUp(context.Background(), signUpInput())
	if err != nil {
		t.Fatalf("SignUp error: %v", err)
	}

	res, err := svc.SignIn(context.Background(), "50Kobo", "Kobo3602019@")
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}
	if res.ID != u.ID || res.Username != u.Username {
		t.Fatalf("result identity mismatch: got {%q %q}", res.ID, res.Username)
	}

	claims, err := tokens.Verify(res.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.ID != u.ID || claims.Username != u.Username {
		t.Fatalf("token claims mismatch: got {%q %q}", claims.ID, claims.Username)
	}
}

func TestSignIn_SameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	t.Parallel()

	svc := application.NewUserService(memory.NewUserRepository(), helpers.NewTokenManager("s", time.Hour), quietLogger())
	if _, err := svc.SignUp(context.Background(), signUpInput()); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}

	_, errUnknown := svc.SignIn(context.Background(), "nobody99", "Kobo3602019@")
	_, errWrongPwd := svc.SignIn(context.Background(), "50Kobo", "wrong-password")

	if !errors.Is(errUnknown, application.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPwd, application.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPwd)
	}
}
