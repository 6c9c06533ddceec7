package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("America/Sao_Paulo"))
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Marte/Cratera"))
}

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "America/Sao_Paulo", Location("nope").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}
