package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64" example:"admin"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"password123"`
}
