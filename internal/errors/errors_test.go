package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantOK  bool
		wantMsg string
	}{
		{name: "direct", err: NewNotFoundError("order 0125001 not found"), wantOK: true, wantMsg: "order 0125001 not found"},
		{name: "wrapped", err: fmt.Errorf("rendering worksheet: %w", NewNotFoundError("fabric 7 not found")), wantOK: true, wantMsg: "fabric 7 not found"},
		{name: "other error", err: errors.New("connection reset")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nfe, ok := IsNotFoundError(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, nfe)
				return
			}
			assert.Equal(t, tt.wantMsg, nfe.Error())
		})
	}
}

func TestValidationError_KeepsDetails(t *testing.T) {
	err := NewValidationError("invalid order",
		ValidationDetail{Field: "quantity", Message: "quantity must be a positive number"},
		ValidationDetail{Field: "productTypes", Message: "select at least one product type"},
	)

	assert.Equal(t, "invalid order", err.Error())
	assert.Len(t, err.Details, 2)
	assert.Equal(t, "productTypes", err.Details[1].Field)
}

func TestInternalError_WrapsCause(t *testing.T) {
	cause := errors.New("zip: write error")
	err := NewInternalError("worksheet rendering failed", cause)

	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "worksheet rendering failed")
	assert.Contains(t, err.Error(), "zip: write error")
	assert.True(t, errors.Is(err, cause))
}

func TestInternalError_NilCause(t *testing.T) {
	err := NewInternalError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestValidationError_IsValidationError_Wrapped(t *testing.T) {
	err := fmt.Errorf("submitting order: %w", NewValidationError("validation failed"))

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "validation failed", ve.Message)
}

func TestConflictError_IsConflictError(t *testing.T) {
	err := NewConflictError("spk 0125001 already exists")

	ce, ok := IsConflictError(err)
	assert.True(t, ok)
	assert.Equal(t, "spk 0125001 already exists", ce.Error())

	_, ok = IsConflictError(errors.New("other"))
	assert.False(t, ok)
}

func TestUnavailableError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUnavailableError("inventory unavailable", cause)

	ue, ok := IsUnavailableError(err)
	assert.True(t, ok)
	assert.Contains(t, ue.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "no cause", NewUnavailableError("no cause", nil).Error())
}
