package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := NewParsingError("bad token", ErrInvalidJSON)
	assert.Equal(t, "parsing: bad token: invalid JSON format", err.Error())

	bare := &AppError{Type: ErrorTypeOutput, Message: "disk full"}
	assert.Equal(t, "output: disk full", bare.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	err := NewInputError("no data", ErrEmptyInput)
	assert.True(t, stderrors.Is(err, ErrEmptyInput))
}

func TestAppError_IsMatchesOnType(t *testing.T) {
	err := NewGenerateError("boom", nil)
	assert.True(t, stderrors.Is(err, &AppError{Type: ErrorTypeGenerate}))
	assert.False(t, stderrors.Is(err, &AppError{Type: ErrorTypeParsing}))
}

func TestUserFriendlyError_AppErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"input", NewInputError("no data", nil), "Input error: no data"},
		{"parsing", NewParsingError("bad json", nil), "JSON parsing error: bad json"},
		{"analysis", NewAnalysisError("bad tree", nil), "Type inference error: bad tree"},
		{"generate", NewGenerateError("bad class", nil), "Code generation error: bad class"},
		{"format", NewFormatError("bad source", nil), "Formatting error: bad source"},
		{"output", NewOutputError("bad write", nil), "Output error: bad write"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserFriendlyError(tt.err))
		})
	}
}

func TestUserFriendlyError_Sentinels(t *testing.T) {
	assert.Equal(t, "Error: The input is empty. Please provide valid JSON data.", UserFriendlyError(ErrEmptyInput))
	assert.Equal(t, "Error: The input contains invalid JSON. Please check your JSON syntax.", UserFriendlyError(ErrInvalidJSON))
}

func TestUserFriendlyError_Unknown(t *testing.T) {
	assert.Equal(t, "Error: something odd", UserFriendlyError(stderrors.New("something odd")))
}
