package validator

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type disciplineInput struct {
	Name     string `validate:"required"`
	MinTeams int    `validate:"min=1"`
	MaxTeams int    `validate:"gtefield=MinTeams"`
}

func TestParseErrorValidationErrors(t *testing.T) {
	err := validator.New().Struct(disciplineInput{MinTeams: 3, MaxTeams: 2})

	fields := ParseError(err)

	assert.Equal(t, "Name is required", fields["Name"])
	assert.Equal(t, "MaxTeams must not be below MinTeams", fields["MaxTeams"])
	assert.NotContains(t, fields, "MinTeams")
}

func TestParseErrorPlainError(t *testing.T) {
	fields := ParseError(errors.New("EOF"))
	assert.Equal(t, map[string]string{"error": "EOF"}, fields)
}

func TestParseErrorNil(t *testing.T) {
	assert.Empty(t, ParseError(nil))
}

func TestBindingUsesJSONNames(t *testing.T) {
	type body struct {
		StartsAt int `json:"starts_at" binding:"required"`
	}
	err := binding.Validator.ValidateStruct(body{})

	fields := ParseError(err)
	assert.Equal(t, "starts_at is required", fields["starts_at"])
}
