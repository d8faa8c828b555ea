package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGatewayError_UnwrapAndMessage(t *testing.T) {
	cause := fmt.Errorf("boom: %w", ErrorNotFound)
	err := NewGatewayError("update", "quotes", cause)

	require.True(t, errors.Is(err, ErrorNotFound))
	require.Equal(t, "update quotes: boom: not found", err.Error())

	var ge *GatewayError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &ge))
	require.Equal(t, "quotes", ge.Target)
}

func TestGatewayError_NoTarget(t *testing.T) {
	err := &GatewayError{Op: "upload", Message: "denied"}
	require.Equal(t, "upload: denied", err.Error())
}

func TestValidationError_OrNilAndIs(t *testing.T) {
	v := &ValidationError{}
	require.NoError(t, v.OrNil())

	v.Add("email", "Valid email is required")
	v.Add("email", "ignored")
	v.Add("name", "Name is required")

	err := v.OrNil()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrorValidation))
	require.Equal(t, "validation error: email: Valid email is required; name: Name is required", err.Error())
}
