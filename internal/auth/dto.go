package auth

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"notblank"`
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
