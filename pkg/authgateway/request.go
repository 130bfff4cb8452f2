package authgateway

type ValidateTokenRequest struct {
	Token string `json:"token"`
}
