package dto

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginResponse returns the authenticated user, the signed token and the
// ability snapshot baked into it.
type LoginResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	Abilities []string     `json:"abilities"`
}
