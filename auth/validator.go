package auth

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CredentialsRequest carries the fields of a create-user or update-user call
// that need validating before any hashing happens.
type CredentialsRequest struct {
	Username string `validate:"required,min=3,max=64"`
	Password string `validate:"required,min=8,max=128"`
}

// ValidateCredentials checks the username/password rules. It runs before the
// Argon2id derivation, which is the expensive part.
func ValidateCredentials(req CredentialsRequest) error {
	return validate.Struct(req)
}
