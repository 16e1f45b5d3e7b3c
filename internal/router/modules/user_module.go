package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fajarp/task-tracker-api/internal/container"
	handlers "github.com/fajarp/task-tracker-api/internal/interface/http"
	"github.com/fajarp/task-tracker-api/internal/interface/middleware"
)

// UserModule wires the public credential routes.
// POST /user/signup, POST /user/signin
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Per-IP limits on the credential endpoints; sign-in tighter since
	// it is the brute-force target.
	signUpLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	signInLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)

	user := rg.Group("/user")
	{
		user.POST("/signup", signUpLimiter, m.Handler.SignUp)
		user.POST("/signin", signInLimiter, m.Handler.SignIn)
	}
}
