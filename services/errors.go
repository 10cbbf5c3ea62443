package services

// AppError is a domain failure with the HTTP status it should surface as.
// Handlers unwrap it with errors.As; anything else is a 500.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string { return e.Message }

func NewAppError(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func NotFound(message string) *AppError { return &AppError{Status: 404, Message: message} }

func Conflict(message string) *AppError { return &AppError{Status: 400, Message: message} }

func Invalid(message string) *AppError { return &AppError{Status: 400, Message: message} }

func Forbidden(message string) *AppError { return &AppError{Status: 403, Message: message} }
