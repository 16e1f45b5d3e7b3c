package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fajarp/task-tracker-api/internal/application"
	"github.com/fajarp/task-tracker-api/internal/infrastructure/memory"
	handlers "github.com/fajarp/task-tracker-api/internal/interface/http"
	"github.com/fajarp/task-tracker-api/pkg/helpers"
	"github.com/fajarp/task-tracker-api/pkg/response"
	"github.com/fajarp/task-tracker-api/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newUserRouter() *gin.Engine {
	logger := quietLogger()
	svc := application.NewUserService(memory.NewUserRepository(), helpers.NewTokenManager("test-secret", time.Hour), logger)
	h := handlers.NewUserHandler(svc, logger)

	r := gin.New()
	r.POST("/user/signup", h.SignUp)
	r.POST("/user/signin", h.SignIn)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env response.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope %q: %v", w.Body.String(), err)
	}
	return w, env
}

const signUpBody = `{"username":"50Kobo","password":"Kobo3602019@","name":"Kobo","birthdate":"12-1-2010","nationality":"Nigerian"}`

func TestSignUpHandler_Success(t *testing.T) {
	r := newUserRouter()

	w, env := postJSON(t, r, "/user/signup", signUpBody)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	if !env.Success || env.Message != "SIGN_UP_SUCCESSFUL" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	data, ok := env.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data is not an object: %+v", env.Data)
	}
	if data["username"] != "50Kobo" {
		t.Fatalf("username = %v", data["username"])
	}
	if data["password"] == "Kobo3602019@" {
		t.Fatalf("response contains the plaintext password")
	}
}

func TestSignUpHandler_Duplicate(t *testing.T) {
	r := newUserRouter()

	if w, _ := postJSON(t, r, "/user/signup", signUpBody); w.Code != http.StatusOK {
		t.Fatalf("first signup status = %d", w.Code)
	}
	w, env := postJSON(t, r, "/user/signup", signUpBody)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env.Message != "USER_ALREADY_EXIST" || env.Success || env.Data != nil {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestSignUpHandler_Validation(t *testing.T) {
	r := newUserRouter()

	tests := []struct {
		name string
		body string
	}{
		{"short username", `{"username":"abc","password":"longenough","name":"Kobo","birthdate":"12-1-2010","nationality":"Nigerian"}`},
		{"short password", `{"username":"validuser","password":"short","name":"Kobo","birthdate":"12-1-2010","nationality":"Nigerian"}`},
		{"numeric name", `{"username":"validuser","password":"longenough","name":"K0b0","birthdate":"12-1-2010","nationality":"Nigerian"}`},
		{"bad birthdate", `{"username":"validuser","password":"longenough","name":"Kobo","birthdate":"yesterday","nationality":"Nigerian"}`},
		{"short nationality", `{"username":"validuser","password":"longenough","name":"Kobo","birthdate":"12-1-2010","nationality":"NG"}`},
		{"underage", `{"username":"validuser","password":"longenough","name":"Kobo","birthdate":"12-1-2023","nationality":"Nigerian"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := postJSON(t, r, "/user/signup", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (%s)", w.Code, w.Body.String())
			}
			if env.Success || env.Data != nil {
				t.Fatalf("unexpected envelope: %+v", env)
			}
		})
	}
}

func TestSignInHandler_SuccessAndTokenDecodes(t *testing.T) {
	logger := quietLogger()
	tokens := helpers.NewTokenManager("test-secret", time.Hour)
	svc := application.NewUserService(memory.NewUserRepository(), tokens, logger)
	h := handlers.NewUserHandler(svc, logger)
	r := gin.New()
	r.POST("/user/signup", h.SignUp)
	r.POST("/user/signin", h.SignIn)

	if w, _ := postJSON(t, r, "/user/signup", signUpBody); w.Code != http.StatusOK {
		t.Fatalf("signup status = %d", w.Code)
	}

	w, env := postJSON(t, r, "/user/signin", `{"username":"50Kobo","password":"Kobo3602019@"}`)
	if w.Code != http.StatusOK || env.Message != "SIGN_IN_SUCCESSFUL" {
		t.Fatalf("status = %d, envelope %+v", w.Code, env)
	}
	data := env.Data.(map[string]interface{})
	tok, _ := data["token"].(string)
	claims, err := tokens.Verify(tok)
	if err != nil {
		t.Fatalf("returned token does not verify: %v", err)
	}
	if claims.ID != data["id"] || claims.Username != "50Kobo" {
		t.Fatalf("token payload mismatch: %+v vs %+v", claims, data)
	}
}

func TestSignInHandler_NoEnumerationSignal(t *testing.T) {
	r := newUserRouter()
	if w, _ := postJSON(t, r, "/user/signup", signUpBody); w.Code != http.StatusOK {
		t.Fatalf("signup failed")
	}

	_, wrongPwd := postJSON(t, r, "/user/signin", `{"username":"50Kobo","password":"wrong-password"}`)
	_, unknown := postJSON(t, r, "/user/signin", `{"username":"nobody99","password":"whatever1"}`)

	if wrongPwd.Message != "INVALID_USERNAME_OR_PASSWORD" {
		t.Fatalf("wrong password message = %q", wrongPwd.Message)
	}
	if unknown.Message != wrongPwd.Message {
		t.Fatalf("error messages differ: %q vs %q", unknown.Message, wrongPwd.Message)
	}
}
