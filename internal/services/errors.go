package services

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers. User-facing
// messages stay in Portuguese to match the public API contract.
var (
	ErrContentNotFound    = errors.New("Conteúdo não encontrado")
	ErrStreamingNotFound  = errors.New("Streaming não encontrado")
	ErrStreamingExists    = errors.New("Streaming já existe")
	ErrInvalidCredentials = errors.New("Credenciais inválidas")
	ErrInvalidToken       = errors.New("Token inválido ou expirado")
)

// ValidationError marks a rejected write caused by a missing or invalid
// required field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err is a validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
