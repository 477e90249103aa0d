package domain

import "errors"

var (
	ErrNotFound                = errors.New("resource not found")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrUserInactive            = errors.New("user is inactive")
	ErrUnsupportedDocumentType = errors.New("unsupported document type")
	ErrUnsupportedFileType     = errors.New("unsupported file type")
	ErrFileTooLarge            = errors.New("file exceeds maximum allowed size")
	ErrRecognitionFailed       = errors.New("text recognition failed")
	ErrDuplicateEmail          = errors.New("email already exists")
	ErrUploadFailed            = errors.New("file upload to storage failed")
	ErrInvalidFilter           = errors.New("invalid filter field or operator")
	ErrInvalidSort             = errors.New("invalid sort field or order")
	ErrInsufficientRole        = errors.New("insufficient role for this action")
)
