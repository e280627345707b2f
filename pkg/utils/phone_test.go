package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already normalized", "+79991234567", "+79991234567"},
		{"national format with 8", "89991234567", "+79991234567"},
		{"bare 7 prefix", "79991234567", "+79991234567"},
		{"spaces and dashes", "+7 999 123-45-67", "+79991234567"},
		{"parentheses", "8 (999) 123 45 67", "+79991234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone("phone", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhoneRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too short", "12345"},
		{"wrong country code", "+19991234567"},
		{"letters", "phone me maybe"},
		{"too long", "+799912345678"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizePhone("client_phone", tt.input)
			require.Error(t, err)

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, "client_phone", fieldErr.Field)
		})
	}
}
