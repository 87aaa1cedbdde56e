package users

import (
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/api"
	"storefront/internal/database"
	"storefront/internal/middleware"
	"storefront/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	listUsers   = store.ListUsers
	getUserByID = store.GetUserByID
	deleteUser  = store.DeleteUser
)

// @Summary     List all users
// @Description Returns every user account; the password hash is never serialized
// @Tags        users
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		resp := make([]api.UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, api.UserResponse{
				ID:        u.ID,
				Name:      u.Name,
				Email:     u.Email,
				IsAdmin:   u.IsAdmin,
				CreatedAt: u.CreatedAt,
				UpdatedAt: u.UpdatedAt,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Delete a user
// @Description Removes a user account; an admin cannot delete themselves
// @Tags        users
// @Produce     json
// @Param       id path int true "user ID"
// @Success     200 {object} api.ErrorResponse "removal confirmation message"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}

		requesterID, _ := c.Get(middleware.ContextUserKey).(int)
		if requesterID == user.ID {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "admin cannot delete themselves"})
		}

		if err := deleteUser(c.Request().Context(), db, user.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		return c.JSON(http.StatusOK, api.ErrorResponse{Message: "user removed successfully"})
	}
}
