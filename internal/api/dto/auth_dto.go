package dto

// LoginRequest payload for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RefreshRequest payload for POST /v1/auth/refreshToken.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// TokenPairResponse is returned on login.
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AccessTokenResponse is returned on refresh.
type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// StatusResponse acknowledges a state change.
type StatusResponse struct {
	Status string `json:"status"`
}
