package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	assert.True(t, Validate("+1 415 555 2671", ""))
	assert.True(t, Validate("(415) 555-2671", "US"))
	assert.False(t, Validate("not a number", ""))
	assert.False(t, Validate("123", "US"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "+14155552671", Normalize("(415) 555-2671", "US"))

	// Unparseable input passes through unchanged.
	assert.Equal(t, "not a number", Normalize("not a number", ""))
	assert.Equal(t, "123", Normalize("123", "US"))
}

func TestPretty(t *testing.T) {
	got, err := Pretty("+14155552671", "")
	assert.NoError(t, err)
	assert.Equal(t, "(415) 555-2671", got)

	_, err = Pretty("not a number", "")
	assert.Error(t, err)
}
