package captcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "sec", r.PostFormValue("secret"))
		assert.Equal(t, "tok", r.PostFormValue("response"))
		assert.Equal(t, "1.2.3.4", r.PostFormValue("remoteip"))
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	ok, err := New("sec", srv.URL).Verify(context.Background(), "tok", "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	}))
	defer srv.Close()

	ok, err := New("sec", srv.URL).Verify(context.Background(), "tok", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyEmptyTokenIsDefinitiveNo(t *testing.T) {
	ok, err := New("sec", "http://127.0.0.1:1").Verify(context.Background(), "  ", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyTransportErrorSurfaces(t *testing.T) {
	ok, err := New("sec", "http://127.0.0.1:1").Verify(context.Background(), "tok", "")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestVerifyMissingSecret(t *testing.T) {
	_, err := New("", "http://127.0.0.1:1").Verify(context.Background(), "tok", "")
	assert.Error(t, err)
}
