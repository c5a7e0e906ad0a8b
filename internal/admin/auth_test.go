package admin_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abaixodezero/storefront/internal/admin"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := admin.HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, admin.CheckPassword(hash, "s3cret"))
	assert.False(t, admin.CheckPassword(hash, "wrong"))
}

func TestLoginWithHash(t *testing.T) {
	hash, err := admin.HashPassword("s3cret")
	require.NoError(t, err)
	gate := admin.NewGate("admin", hash, "")

	token, err := gate.Login("admin", "s3cret")
	require.NoError(t, err)
	assert.True(t, gate.ValidToken(token))

	_, err = gate.Login("admin", "wrong")
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
	_, err = gate.Login("root", "s3cret")
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
}

func TestLoginWithPlainFallback(t *testing.T) {
	gate := admin.NewGate("admin", "", "s3cret")
	_, err := gate.Login("admin", "s3cret")
	assert.NoError(t, err)
}

func TestLoginDisabledWithoutCredential(t *testing.T) {
	gate := admin.NewGate("admin", "", "")
	_, err := gate.Login("admin", "")
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gate := admin.NewGate("admin", "", "s3cret")
	token, err := gate.Login("admin", "s3cret")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/secure", admin.RequireAuth(gate), func(c *gin.Context) { c.String(200, "ok") })

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"bad scheme", token, http.StatusUnauthorized},
		{"unknown token", "Bearer nope", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		r.ServeHTTP(w, req)
		assert.Equal(t, tc.want, w.Code, tc.name)
	}
}
