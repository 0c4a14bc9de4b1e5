package recaptcha_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dangerclosesec/thinknest/internal/recaptcha"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	t.Run("posts the secret and token as a form", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "s3cret", r.PostForm.Get("secret"))
			assert.Equal(t, "tok", r.PostForm.Get("response"))
			assert.Equal(t, "10.0.0.1", r.PostForm.Get("remoteip"))
			w.Write([]byte(`{"success":true,"score":0.9}`))
		}))
		defer srv.Close()

		res, err := recaptcha.NewClient("s3cret", srv.URL).Verify(context.Background(), "tok", "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, res.Success)
		require.NotNil(t, res.Score)
		assert.InDelta(t, 0.9, *res.Score, 0.0001)
	})

	t.Run("rejected token is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
		}))
		defer srv.Close()

		res, err := recaptcha.NewClient("s3cret", srv.URL).Verify(context.Background(), "bad", "")
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, []string{"invalid-input-response"}, res.ErrorCodes)
	})

	t.Run("upstream failure is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := recaptcha.NewClient("s3cret", srv.URL).Verify(context.Background(), "tok", "")
		assert.Error(t, err)
	})
}
