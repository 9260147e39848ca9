package objectid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Parallel()

	a := New()
	b := New()

	assert.Len(t, a, 24)
	assert.True(t, IsValid(a), "generated id should be valid")
	assert.NotEqual(t, a, b, "generated ids should be unique")
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid lowercase hex", "65a1f0c2e4b0a1b2c3d4e5f6", true},
		{"valid uppercase hex", "65A1F0C2E4B0A1B2C3D4E5F6", true},
		{"empty", "", false},
		{"undefined literal", "undefined", false},
		{"too short", "65a1f0c2e4b0a1b2c3d4e5", false},
		{"too long", "65a1f0c2e4b0a1b2c3d4e5f600", false},
		{"non hex characters", "zzzzzzzzzzzzzzzzzzzzzzzz", false},
		{"twelve byte string", "aaaaaaaaaaaa", false},
		{"uuid", "3f2b8c1e-5d4a-4b6e-9f0a-1c2d3e4f5a6b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsValid(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	got, ok := Normalize("65A1F0C2E4B0A1B2C3D4E5F6")
	assert.True(t, ok)
	assert.Equal(t, "65a1f0c2e4b0a1b2c3d4e5f6", got)

	got, ok = Normalize("undefined")
	assert.False(t, ok)
	assert.Empty(t, got)
}
