package model

import (
	"errors"
	"fmt"
)

// Standard error codes for domain failures
const (
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidCategory = "INVALID_CATEGORY"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewProductNotFoundError reports that no product has the given id.
func NewProductNotFoundError(id int64) *DomainError {
	return NewDomainError(ErrCodeProductNotFound, fmt.Sprintf("product not found with id: %d", id))
}

// NewInvalidCategoryError reports a category name outside the known set.
func NewInvalidCategoryError(value string) *DomainError {
	return NewDomainError(ErrCodeInvalidCategory, fmt.Sprintf("invalid category: %s", value))
}

// IsNotFound reports whether err carries a not-found domain error.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeProductNotFound)
}

// IsInvalidInput reports whether err carries an invalid-input domain error.
func IsInvalidInput(err error) bool {
	return hasCode(err, ErrCodeInvalidCategory)
}

func hasCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
