package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{Fields: FieldErrors{
		FieldPhone: MsgPhoneRequired,
		FieldEmail: MsgInvalidEmail,
	}}

	expected := "invalid client: email, phone"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %q, want %q", err.Error(), expected)
	}
}

func TestAsValidationError(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", &ValidationError{Fields: FieldErrors{FieldName: MsgNameRequired}})

	fields, ok := AsValidationError(wrapped)
	if !ok {
		t.Fatal("AsValidationError() should find the wrapped error")
	}

	if fields[FieldName] != MsgNameRequired {
		t.Errorf("fields[name] = %q, want %q", fields[FieldName], MsgNameRequired)
	}

	if _, ok := AsValidationError(errors.New("other")); ok {
		t.Error("AsValidationError() should not match a plain error")
	}
}

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{ID: 12}

	if err.Error() != "client 12 not found" {
		t.Errorf("NotFoundError.Error() = %q", err.Error())
	}

	if !errors.Is(err, ErrClientNotFound) {
		t.Error("errors.Is should match ErrClientNotFound")
	}
}
