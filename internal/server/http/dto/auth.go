package dto

// RegisterRequest describes the registration payload.
type RegisterRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest describes login credentials.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
