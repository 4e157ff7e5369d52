//go:build unit

package navigator_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"blane-checkout/internal/infra/navigator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormPost(t *testing.T) {
	t.Run("renders an auto-submitting form with the opaque fields", func(t *testing.T) {
		var buf bytes.Buffer
		nav := navigator.NewFormPost(&buf)

		err := nav.SubmitPaymentForm("https://gateway.example.com/pay", map[string]string{
			"token":  "abc123",
			"amount": "75.90",
		})
		require.NoError(t, err)

		page := buf.String()
		assert.Contains(t, page, `action="https://gateway.example.com/pay"`)
		assert.Contains(t, page, `name="token" value="abc123"`)
		assert.Contains(t, page, `name="amount" value="75.90"`)
		assert.Contains(t, page, "document.forms[0].submit()")
	})

	t.Run("escapes hostile field values", func(t *testing.T) {
		var buf bytes.Buffer
		nav := navigator.NewFormPost(&buf)

		err := nav.SubmitPaymentForm("https://gateway.example.com/pay", map[string]string{
			"note": `"><script>alert(1)</script>`,
		})
		require.NoError(t, err)
		assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
	})

	t.Run("sets the content type before writing to an HTTP response", func(t *testing.T) {
		rec := httptest.NewRecorder()
		nav := navigator.NewFormPost(rec)

		require.NoError(t, nav.SubmitPaymentForm("https://gateway.example.com/pay", nil))
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "document.forms[0].submit()")
	})

	t.Run("no fields still renders a submittable form", func(t *testing.T) {
		var buf bytes.Buffer
		nav := navigator.NewFormPost(&buf)

		require.NoError(t, nav.SubmitPaymentForm("https://gateway.example.com/pay", nil))
		assert.Contains(t, buf.String(), "<form method=\"POST\"")
	})
}
