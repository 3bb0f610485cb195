package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	notFound := NewNotFoundErr(EntityType_Challenge, "challenge not found")
	validation := NewValidationErr(EntityType_User, "email cannot be empty")
	repository := NewRepositoryErr(EntityType_Evaluation, "save", errors.New("connection reset"), map[string]any{"id": "abc"})

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(validation))
	assert.True(t, IsValidation(validation))
	assert.True(t, IsRepositoryErr(repository))

	assert.True(t, IsDomainErr(notFound))
	assert.True(t, IsDomainErr(validation))
	assert.True(t, IsDomainErr(repository))
	assert.False(t, IsDomainErr(errors.New("raw storage error")))
	assert.False(t, IsDomainErr(nil))
}

func TestRepositoryErr_PreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewRepositoryErr(EntityType_Challenge, "save", cause, map[string]any{"id": "abc"})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, EntityType_Challenge, err.Entity())
	assert.Equal(t, "save", err.Operation())
	assert.Equal(t, "abc", err.Metadata()["id"])
	assert.Equal(t, "Challenge save: connection reset", err.Error())
}

func TestIsDomainErr_Wrapped(t *testing.T) {
	// domain errors stay recognizable through fmt wrapping
	inner := NewNotFoundErr(EntityType_User, "user not found")
	wrapped := fmt.Errorf("loading session: %w", inner)

	assert.True(t, IsDomainErr(wrapped))
	assert.True(t, IsNotFound(wrapped))
}

func TestValidationErrWithMetadata(t *testing.T) {
	err := NewValidationErrWithMetadata(EntityType_FocusArea, "missing required parameters", map[string]any{
		"missing": []string{"name", "priority"},
	})

	assert.True(t, IsValidation(err))
	assert.Equal(t, []string{"name", "priority"}, err.Metadata()["missing"])
}
