package domain

import (
	"errors"
	"fmt"
)

// EntityType identifies the aggregate an error, event, or cache entry refers to.
type EntityType string

const (
	// EntityType_User identifies the user aggregate.
	EntityType_User EntityType = "User"
	// EntityType_Challenge identifies the challenge aggregate.
	EntityType_Challenge EntityType = "Challenge"
	// EntityType_Evaluation identifies the evaluation aggregate.
	EntityType_Evaluation EntityType = "Evaluation"
	// EntityType_PersonalityProfile identifies the personality profile aggregate.
	EntityType_PersonalityProfile EntityType = "PersonalityProfile"
	// EntityType_FocusArea identifies the focus area aggregate.
	EntityType_FocusArea EntityType = "FocusArea"
)

// errors.go defines the closed domain error hierarchy. Every error returned
// by a repository public method is one of ValidationErr, NotFoundErr, or
// RepositoryErr; raw storage errors never cross the repository boundary.
type domainErr struct {
	message  string
	entity   EntityType
	op       string
	metadata map[string]any
	cause    error
}

// Error returns the error message.
func (e domainErr) Error() string {
	if e.op != "" {
		return fmt.Sprintf("%s %s: %s", e.entity, e.op, e.message)
	}
	return e.message
}

// Unwrap returns the underlying cause, if any.
func (e domainErr) Unwrap() error {
	return e.cause
}

// Entity returns the aggregate the error refers to.
func (e domainErr) Entity() EntityType {
	return e.entity
}

// Operation returns the repository operation that failed, if recorded.
func (e domainErr) Operation() string {
	return e.op
}

// Metadata returns diagnostic context attached to the error.
func (e domainErr) Metadata() map[string]any {
	return e.metadata
}

// NotFoundErr represents an error when a required lookup returned nothing.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr for the given entity.
func NewNotFoundErr(entity EntityType, message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{entity: entity, message: message},
	}
}

// ValidationErr represents an error when input validation fails.
// Validation errors are raised before any storage call and are never retried.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr for the given entity.
func NewValidationErr(entity EntityType, message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{entity: entity, message: message},
	}
}

// NewValidationErrWithMetadata creates a ValidationErr carrying diagnostic
// metadata, such as the full list of missing required parameters.
func NewValidationErrWithMetadata(entity EntityType, message string, metadata map[string]any) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{entity: entity, message: message, metadata: metadata},
	}
}

// RepositoryErr represents a failure reported by the storage layer, wrapped
// with the entity, operation, and metadata of the call site that failed.
type RepositoryErr struct {
	domainErr
}

// NewRepositoryErr creates a new RepositoryErr wrapping the storage cause.
func NewRepositoryErr(entity EntityType, op string, cause error, metadata map[string]any) *RepositoryErr {
	message := "storage operation failed"
	if cause != nil {
		message = cause.Error()
	}
	return &RepositoryErr{
		domainErr: domainErr{
			entity:   entity,
			op:       op,
			message:  message,
			metadata: metadata,
			cause:    cause,
		},
	}
}

// IsNotFound reports whether err is a NotFoundErr.
func IsNotFound(err error) bool {
	var nf *NotFoundErr
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a ValidationErr.
func IsValidation(err error) bool {
	var ve *ValidationErr
	return errors.As(err, &ve)
}

// IsRepositoryErr reports whether err is a RepositoryErr.
func IsRepositoryErr(err error) bool {
	var re *RepositoryErr
	return errors.As(err, &re)
}

// IsDomainErr reports whether err already belongs to the domain error
// hierarchy. Errors that pass this check are never translated again, which
// keeps internal calls between repository methods from double-wrapping.
func IsDomainErr(err error) bool {
	return IsNotFound(err) || IsValidation(err) || IsRepositoryErr(err)
}
