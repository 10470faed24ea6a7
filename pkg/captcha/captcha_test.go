package captcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerifierSelection(t *testing.T) {
	t.Run("secret configured", func(t *testing.T) {
		_, ok := NewVerifier("secret", true).(*TurnstileVerifier)
		assert.True(t, ok)
	})

	t.Run("no secret, verification not required", func(t *testing.T) {
		v := NewVerifier("", false)
		assert.NoError(t, v.Verify(context.Background(), "anything", "1.2.3.4"))
	})

	t.Run("no secret, verification required", func(t *testing.T) {
		v := NewVerifier("", true)
		err := v.Verify(context.Background(), "anything", "1.2.3.4")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestTurnstileVerify(t *testing.T) {
	t.Run("accepts a valid token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "sk-test", r.Form.Get("secret"))
			assert.Equal(t, "tok-123", r.Form.Get("response"))
			assert.Equal(t, "203.0.113.9", r.Form.Get("remoteip"))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
		}))
		defer srv.Close()

		v := NewTurnstileVerifier("sk-test")
		v.endpoint = srv.URL

		assert.NoError(t, v.Verify(context.Background(), "tok-123", "203.0.113.9"))
	})

	t.Run("rejects a failed verification", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success":     false,
				"error-codes": []string{"invalid-input-response"},
			})
		}))
		defer srv.Close()

		v := NewTurnstileVerifier("sk-test")
		v.endpoint = srv.URL

		err := v.Verify(context.Background(), "tok-bad", "203.0.113.9")
		assert.ErrorIs(t, err, ErrVerificationFailed)
	})

	t.Run("rejects an empty token without calling out", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		v := NewTurnstileVerifier("sk-test")
		v.endpoint = srv.URL

		err := v.Verify(context.Background(), "", "203.0.113.9")
		assert.ErrorIs(t, err, ErrTokenMissing)
		assert.False(t, called)
	})
}
