package api

import "time"

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"_id" example:"1"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	IsAdmin   bool      `json:"isAdmin" example:"false"`
	CreatedAt time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2025-05-01T15:04:05Z"`
}
