// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type passwordFixture struct {
	Password string `validate:"strong_password"`
}

func TestStrongPasswordValidation(t *testing.T) {
	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"all character classes", "Str0ng!Pass", true},
		{"too short", "S7!a", false},
		{"no uppercase", "weak1pass!", false},
		{"no lowercase", "WEAK1PASS!", false},
		{"no number", "WeakPass!!", false},
		{"no special", "WeakPass123", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(&passwordFixture{Password: tc.password})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestGetValidationErrors(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required,min=2"`
	}

	err := ValidateStruct(&form{Email: "not-an-email", Name: ""})
	errors := GetValidationErrors(err)

	assert.Len(t, errors, 2)

	byField := make(map[string]ValidationError)
	for _, e := range errors {
		byField[e.Field] = e
	}

	assert.Equal(t, "email", byField["email"].Tag)
	assert.Equal(t, "Invalid email format", byField["email"].Message)
	assert.Equal(t, "required", byField["name"].Tag)
}

func TestGetValidationErrorsNilError(t *testing.T) {
	assert.Empty(t, GetValidationErrors(nil))
}
