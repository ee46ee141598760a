package dto

// LoginRequest is the credential pair submitted to any of the three role
// login endpoints.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the authenticated account and its bearer token
type LoginResponse struct {
	Result interface{} `json:"result"`
	Token  string      `json:"token"`
}

// UpdatePasswordRequest is the self-service password change payload
type UpdatePasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,min=6"`
}
