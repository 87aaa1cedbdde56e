package api

// UpdateProductRequest carries partial-field semantics: a zero-valued field
// keeps the stored value, including a numeric zero (observed behavior of the
// catalog API, kept as is).
// swagger:model api.UpdateProductRequest
type UpdateProductRequest struct {
	Name         string  `json:"name" example:"Keyboard"`
	Description  string  `json:"description" example:"Mechanical, tenkeyless"`
	Category     string  `json:"category" example:"Electronics"`
	Price        float64 `json:"price" validate:"gte=0" example:"49.99"`
	CountInStock int     `json:"countInStock" validate:"gte=0" example:"8"`
	ImageURL     string  `json:"imageUrl" example:"https://example.com/kb.png"`
}
