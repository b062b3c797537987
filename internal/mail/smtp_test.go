package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage(
		"noreply@x.com",
		"a@x.com",
		"Registro Exitoso",
		"Tu contraseña generada automáticamente: abc123",
		"<p>Tu contraseña generada automáticamente: abc123</p>",
	))

	assert.Contains(t, msg, "From: noreply@x.com\r\n")
	assert.Contains(t, msg, "To: a@x.com\r\n")
	assert.Contains(t, msg, "Subject: Registro Exitoso\r\n")
	assert.Contains(t, msg, "multipart/alternative")
	assert.Contains(t, msg, "Tu contraseña generada automáticamente: abc123")
	assert.Contains(t, msg, "<p>Tu contraseña generada automáticamente: abc123</p>")
	assert.Contains(t, msg, "--registro-alt--\r\n")
}
