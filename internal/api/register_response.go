package api

// swagger:model api.RegisterResponse
type RegisterResponse struct {
	ID    int    `json:"_id" example:"1"`
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
	Token string `json:"token" example:"eyJhbGciOi..."`
}
