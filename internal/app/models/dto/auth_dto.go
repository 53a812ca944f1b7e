package dto

// RegisterRequest carries the fields for account registration. Username is
// optional; the email local part is used when it is absent.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" example:"student@campus.edu"`
	Password  string `json:"password" binding:"required,min=8" example:"Passw0rd"`
	FirstName string `json:"firstName" binding:"required" example:"John"`
	LastName  string `json:"lastName" binding:"required" example:"Doe"`
	Username  string `json:"username,omitempty" example:"jdoe"`
	IsStaff   bool   `json:"isStaff,omitempty" example:"false"`
}

// LoginRequest accepts either an email or a username as identifier.
type LoginRequest struct {
	Email    string `json:"email,omitempty" example:"student@campus.edu"`
	Username string `json:"username,omitempty" example:"jdoe"`
	Password string `json:"password" binding:"required" example:"Passw0rd"`
}

// Identifier returns the login identifier, preferring email over username.
func (r *LoginRequest) Identifier() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

// RefreshTokenRequest carries a refresh token to rotate.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ChangePasswordRequest carries the old and new password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// TokenResponse carries the issued session tokens.
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int64  `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn" example:"2592000"`
}

// UserProfile is the caller-facing account representation.
type UserProfile struct {
	ID           int64   `json:"id" example:"1"`
	Email        string  `json:"email" example:"student@campus.edu"`
	Username     string  `json:"username" example:"jdoe"`
	FirstName    string  `json:"firstName" example:"John"`
	LastName     string  `json:"lastName" example:"Doe"`
	IsStudent    bool    `json:"isStudent" example:"true"`
	IsStaff      bool    `json:"isStaff" example:"false"`
	ProfilePhoto *string `json:"profilePhoto,omitempty"`
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
}
