package models

// LoginMode selects which credential field the identifier is sent as.
// The caller chooses the mode explicitly; the client never guesses from
// the identifier's content.
type LoginMode string

const (
	LoginModeUsername LoginMode = "username"
	LoginModeEmail    LoginMode = "email"
)

// LoginRequest carries login form input. Identifier is a username or an
// email depending on Mode.
type LoginRequest struct {
	Identifier string
	Mode       LoginMode
	Password   string
	RememberMe bool
}

// RegistrationRequest carries the registration form input.
type RegistrationRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Phone           string `json:"phone,omitempty"`
	DateOfBirth     string `json:"dateOfBirth,omitempty"`
	AcceptTerms     bool   `json:"acceptTerms"`
}

// UpdateProfileRequest is a partial profile update; nil fields are omitted
// from the request body and left untouched by the backend.
type UpdateProfileRequest struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}

// ChangePasswordRequest carries the change-password form input.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ResetPasswordRequest completes a forgot-password flow with the emailed token.
type ResetPasswordRequest struct {
	Token           string `json:"token"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// TokenInfo is the credential bundle returned by login and refresh.
// AccessToken is opaque to the client; no local validation is performed.
type TokenInfo struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
	TokenType    string `json:"tokenType"`
}

// LoginResult is the payload of a successful login.
type LoginResult struct {
	User  User      `json:"user"`
	Token TokenInfo `json:"token"`
}

// RegistrationResult is the payload of a successful registration. Status may
// be "pending_verification": that is a completed registration awaiting email
// confirmation, not a failure.
type RegistrationResult struct {
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// RefreshResult is the payload of a successful token refresh.
type RefreshResult struct {
	Token TokenInfo `json:"token"`
}
