package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhoneValid(t *testing.T) {
	valid := []string{
		"+905551234567",
		"05551234567",
		"1234567",
		" +905551234567 ",
	}
	for _, p := range valid {
		assert.True(t, IsPhoneValid(p), p)
	}

	invalid := []string{
		"",
		"+",
		"123456",            // too short
		"1234567890123456",  // too long
		"+90 555 123 45 67", // spaces inside
		"555-123-4567",
		"abcdefg",
	}
	for _, p := range invalid {
		assert.False(t, IsPhoneValid(p), p)
	}
}
