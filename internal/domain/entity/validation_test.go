package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"magazine-catalog/internal/testutil/fixtures"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"too short", "Hi", true},
		{"four characters", "abcd", true},
		{"five characters", "abcde", false},
		{"fifty characters", fixtures.Title(50, "english"), false},
		{"fifty-one characters", fixtures.Title(51, "english"), true},
		{"fifty japanese characters", fixtures.Title(50, "japanese"), false},
		{"fifty-one japanese characters", fixtures.Title(51, "japanese"), true},
		{"empty", "", true},
		{"multi-byte counted per character", "日本語の本", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidValue)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateMagazineName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"one character", "A", true},
		{"two characters", "AB", false},
		{"sixteen characters", strings.Repeat("m", 16), false},
		{"seventeen characters", strings.Repeat("m", 17), true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMagazineName(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidValue)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAuthorNameAndCategory(t *testing.T) {
	assert.ErrorIs(t, ValidateAuthorName(""), ErrInvalidValue)
	assert.NoError(t, ValidateAuthorName("A"))
	assert.ErrorIs(t, ValidateCategory(""), ErrInvalidValue)
	assert.NoError(t, ValidateCategory("T"))
}
