package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyOtpEmail(t *testing.T) {
	body := VerifyOtpEmail("alice@example.com", "042137")

	assert.Contains(t, body, "042137")
	assert.Contains(t, body, "alice@example.com")
	assert.NotContains(t, body, "{{otp}}")
	assert.NotContains(t, body, "{{email}}")
}

func TestResetOtpEmail(t *testing.T) {
	body := ResetOtpEmail("alice@example.com", "000001")

	assert.Contains(t, body, "000001")
	assert.Contains(t, body, "alice@example.com")
	assert.NotContains(t, body, "{{otp}}")
	assert.NotContains(t, body, "{{email}}")
}

func TestWelcomeEmail(t *testing.T) {
	assert.Contains(t, WelcomeEmail("alice@example.com"), "alice@example.com")
}
