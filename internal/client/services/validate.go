package services

import "errors"

var ErrValidation = errors.New("validation failed")

// ValidationError is a client-side rejection raised before any request is
// issued. Its message is meant to be shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ValidateRegistration checks the registration form: name, email, password
// and its confirmation are required and the two passwords must match.
func ValidateRegistration(req RegisterRequest, confirmPassword string) error {
	if req.Name == "" || req.Email == "" || req.Password == "" || confirmPassword == "" {
		return &ValidationError{Message: "Please fill in all fields"}
	}
	if req.Password != confirmPassword {
		return &ValidationError{Message: "Passwords do not match"}
	}
	return nil
}
