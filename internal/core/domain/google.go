package domain

// GoogleUserInfo is the subset of the Google userinfo payload the
// application cares about.
type GoogleUserInfo struct {
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
