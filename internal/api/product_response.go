package api

import "time"

// swagger:model api.ProductResponse
type ProductResponse struct {
	ID           int       `json:"_id" example:"1"`
	UserID       int       `json:"user" example:"1"`
	Name         string    `json:"name" example:"Keyboard"`
	Description  string    `json:"description" example:"Mechanical, tenkeyless"`
	Category     string    `json:"category" example:"Electronics"`
	Price        float64   `json:"price" example:"59.99"`
	CountInStock int       `json:"countInStock" example:"12"`
	ImageURL     string    `json:"imageUrl" example:"https://example.com/kb.png"`
	CreatedAt    time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
	UpdatedAt    time.Time `json:"updatedAt" example:"2025-05-01T15:04:05Z"`
}
