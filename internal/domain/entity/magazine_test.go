package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMagazine(t *testing.T) {
	tests := []struct {
		name     string
		magName  string
		category string
		wantErr  error
	}{
		{"valid", "Byte", "Tech", nil},
		{"name too short", "A", "Tech", ErrInvalidValue},
		{"name too long", "The Very Long Name", "Tech", ErrInvalidValue},
		{"empty category", "Byte", "", ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMagazine(tt.magName, tt.category)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.magName, m.Name())
			assert.Equal(t, tt.category, m.Category())
		})
	}
}

func TestMagazine_SetName(t *testing.T) {
	m, err := NewMagazine("Byte", "Tech")
	require.NoError(t, err)

	require.NoError(t, m.SetName("Wired"))
	assert.Equal(t, "Wired", m.Name())

	err = m.SetName("W")
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, "Wired", m.Name(), "rejected name must keep the previous value")
}

func TestMagazine_SetCategory(t *testing.T) {
	m, err := NewMagazine("Byte", "Tech")
	require.NoError(t, err)

	require.NoError(t, m.SetCategory("Science"))
	assert.Equal(t, "Science", m.Category())

	err = m.SetCategory("")
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, "Science", m.Category())
	assert.Equal(t, "Magazine(Byte, Science)", m.String())
}
