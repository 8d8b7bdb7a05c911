package models

type SignUp struct {
	Email    string `json:"email" validate:"required,email,lte=255"`
	Username string `json:"username" validate:"required,lte=255"`
	Phone    string `json:"phone" validate:"required,lte=20"`
	Gender   string `json:"gender" validate:"omitempty,oneof=men women"`
	Password string `json:"password" validate:"required,gte=8,lte=255"`
}

type SignIn struct {
	Email    string `json:"email" validate:"required,email,lte=255"`
	Password string `json:"password" validate:"required,lte=255"`
}
