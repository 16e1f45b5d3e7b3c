package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fajarp/task-tracker-api/internal/application"
	"github.com/fajarp/task-tracker-api/pkg/helpers"
	"github.com/fajarp/task-tracker-api/pkg/response"
	"github.com/fajarp/task-tracker-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type signUpRequest struct {
	Username    string `json:"username" binding:"required,min=5"`
	Password    string `json:"password" binding:"required,min=7"`
	Name        string `json:"name" binding:"required,min=3,alpha"`
	Birthdate   string `json:"birthdate" binding:"required"`
	Nationality string `json:"nationality" binding:"required,min=3"`
}

type signInRequest struct {
	Username string `json:"username" binding:"required,min=5"`
	Password string `json:"password" binding:"required,min=5"`
}

// SignUp handles POST /user/signup.
func (h *UserHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.FirstDetail(validation.ToDetails(err)))
		return
	}
	birthdate, err := helpers.ParseDate(req.Birthdate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "birthdate must be a valid date")
		return
	}

	u, err := h.Svc.SignUp(c.Request.Context(), application.SignUpInput{
		Username:    req.Username,
		Password:    req.Password,
		Name:        req.Name,
		Birthdate:   birthdate,
		Nationality: req.Nationality,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserExists):
			response.Error(c, http.StatusBadRequest, "USER_ALREADY_EXIST")
		case errors.Is(err, application.ErrBirthdateTooRecent):
			response.Error(c, http.StatusBadRequest, "birthdate must be at least 10 years in the past")
		default:
			response.Internal(c, h.Logger, err)
		}
		return
	}

	// The created record is returned as stored, hash included.
	response.Success(c, u, "SIGN_UP_SUCCESSFUL")
}

// SignIn handles POST /user/signin.
func (h *UserHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.FirstDetail(validation.ToDetails(err)))
		return
	}

	res, err := h.Svc.SignIn(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error(c, http.StatusBadRequest, "INVALID_USERNAME_OR_PASSWORD")
			return
		}
		response.Internal(c, h.Logger, err)
		return
	}
	response.Success(c, res, "SIGN_IN_SUCCESSFUL")
}
