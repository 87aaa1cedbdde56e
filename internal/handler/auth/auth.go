package auth

import (
	"errors"
	"net/http"
	"strings"

	"storefront/internal/api"
	"storefront/internal/database"
	"storefront/internal/model"
	"storefront/internal/service"
	"storefront/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	getUserByEmail   = store.GetUserByEmail
	createUser       = store.CreateUser
)

// @Summary     Register a new user
// @Description Creates an account and returns a fresh bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.RegisterRequest true "registration payload"
// @Success     201 {object} api.RegisterResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)

		if _, err := getUserByEmail(c.Request().Context(), db, req.Email); err == nil {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "user already exists"})
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error during registration"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error during registration"})
		}

		token, err := issueAccessToken(user.ID, service.TokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusCreated, api.RegisterResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Token: token,
		})
	}
}

// @Summary     Log a user in
// @Description Verifies credentials and returns a fresh bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "login payload"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)

		// The response never reveals whether the email exists.
		user, err := getUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid email or password"})
		}
		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid email or password"})
		}

		token, err := issueAccessToken(user.ID, service.TokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
			Token:   token,
		})
	}
}
