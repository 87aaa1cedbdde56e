package api

// swagger:model api.CreateProductRequest
type CreateProductRequest struct {
	Name         string  `json:"name" validate:"required" example:"Keyboard"`
	Description  string  `json:"description" validate:"required" example:"Mechanical, tenkeyless"`
	Category     string  `json:"category" validate:"required" example:"Electronics"`
	Price        float64 `json:"price" validate:"gte=0" example:"59.99"`
	CountInStock int     `json:"countInStock" validate:"gte=0" example:"12"`
	ImageURL     string  `json:"imageUrl" example:"https://example.com/kb.png"`
}
