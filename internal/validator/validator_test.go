package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=EMPLOYER WORKER"`
	Age   *int   `json:"age" validate:"omitempty,min=16,max=100"`
}

func TestValidatePasses(t *testing.T) {
	v := New()
	age := 30
	err := v.Validate(&sample{Email: "a@b.com", Role: "WORKER", Age: &age})
	assert.NoError(t, err)

	// Omitempty: nil pointer is fine.
	assert.NoError(t, v.Validate(&sample{Email: "a@b.com", Role: "EMPLOYER"}))
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&sample{Email: "not-an-email", Role: "ADMIN"})
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, validationErr.Errors, "email")
	assert.Contains(t, validationErr.Errors, "role")
	assert.NotContains(t, validationErr.Errors, "Email", "field names come from json tags")
}

func TestValidateRange(t *testing.T) {
	v := New()
	age := 7
	err := v.Validate(&sample{Email: "a@b.com", Role: "WORKER", Age: &age})
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, validationErr.Errors, "age")
}
