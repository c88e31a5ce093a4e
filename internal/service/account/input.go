package account

import "github.com/heartmarshall/blog-backend/internal/validate"

// RegisterInput holds the fields accepted at registration. The password is
// generated server-side.
type RegisterInput struct {
	Name  string `json:"name"  validate:"required,min=3,max=80"`
	Email string `json:"email" validate:"required,email,max=200"`
}

// Validate validates the register input.
func (i RegisterInput) Validate() error { return validate.Struct(i) }

// LoginInput holds credentials for login.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=256"`
}

// Validate validates the login input.
func (i LoginInput) Validate() error { return validate.Struct(i) }

// UploadImageInput carries a base64 image, optionally as a data URI.
type UploadImageInput struct {
	Base64Image string `json:"base64Image" validate:"required"`
}

// Validate validates the upload input.
func (i UploadImageInput) Validate() error { return validate.Struct(i) }
