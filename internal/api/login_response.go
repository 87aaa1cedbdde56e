package api

// swagger:model api.LoginResponse
type LoginResponse struct {
	ID      int    `json:"_id" example:"1"`
	Name    string `json:"name" example:"Alice"`
	Email   string `json:"email" example:"alice@example.com"`
	IsAdmin bool   `json:"isAdmin" example:"false"`
	Token   string `json:"token" example:"eyJhbGciOi..."`
}
