package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fajarp/task-tracker-api/internal/interface/middleware"
	"github.com/fajarp/task-tracker-api/pkg/helpers"
	"github.com/fajarp/task-tracker-api/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authRouter(tokens *helpers.TokenManager) *gin.Engine {
	r := gin.New()
	r.GET("/protected", middleware.RequireAuth(tokens), func(c *gin.Context) {
		uid, _ := middleware.UserIDFrom(c)
		response.Success(c, gin.H{"id": uid, "username": c.GetString(middleware.CtxUsernameKey)}, "ok")
	})
	return r
}

func doGet(t *testing.T, r *gin.Engine, authHeader string) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env response.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	return w, env
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r := authRouter(helpers.NewTokenManager("s", time.Hour))

	w, env := doGet(t, r, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if env.Message != "Missing or Invalid Token" || env.Success || env.Data != nil {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestRequireAuth_MalformedScheme(t *testing.T) {
	r := authRouter(helpers.NewTokenManager("s", time.Hour))

	w, env := doGet(t, r, "Token abc")
	if w.Code != http.StatusUnauthorized || env.Message != "Missing or Invalid Token" {
		t.Fatalf("status = %d, message = %q", w.Code, env.Message)
	}
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	r := authRouter(helpers.NewTokenManager("s", time.Hour))

	w, env := doGet(t, r, "Bearer garbage")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if env.Message != "Bad/Expired Token" {
		t.Fatalf("message = %q, want Bad/Expired Token", env.Message)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	expired := helpers.NewTokenManager("s", -time.Minute)
	tok, err := expired.Issue("u1", "someuser")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	r := authRouter(helpers.NewTokenManager("s", time.Hour))
	w, env := doGet(t, r, "Bearer "+tok)
	if w.Code != http.StatusUnauthorized || env.Message != "Bad/Expired Token" {
		t.Fatalf("status = %d, message = %q", w.Code, env.Message)
	}
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := helpers.NewTokenManager("s", time.Hour)
	tok, err := tokens.Issue("Ab3xZ", "50Kobo")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	r := authRouter(tokens)
	w, env := doGet(t, r, "Bearer "+tok)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("status = %d, envelope %+v", w.Code, env)
	}
	data, ok := env.Data.(map[string]interface{})
	if !ok || data["id"] != "Ab3xZ" || data["username"] != "50Kobo" {
		t.Fatalf("identity not attached to context: %+v", env.Data)
	}
}
