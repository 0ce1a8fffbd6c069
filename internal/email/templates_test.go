package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_RenderConfirmation(t *testing.T) {
	t.Parallel()

	tm, err := NewTemplateManager(Config{})
	require.NoError(t, err)

	html, err := tm.Render("confirmation", TemplateData{
		UserName:   "Ann",
		Subject:    "Confirm your email address",
		ActionURL:  "http://localhost:8080/api/v1/auth/confirm?token=abc",
		ActionText: "Confirm my account",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Ann")
	assert.Contains(t, html, "http://localhost:8080/api/v1/auth/confirm?token=abc")
	assert.Contains(t, html, "Confirm my account")
}

func TestTemplateManager_UnknownTemplate(t *testing.T) {
	t.Parallel()

	tm, err := NewTemplateManager(Config{})
	require.NoError(t, err)

	_, err = tm.Render("no_such_template", TemplateData{})
	assert.Error(t, err)
}
