package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dedewo882/volunteer-platform-final/internal/helper"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authApp(auth helper.Auth) *fiber.App {
	app := fiber.New()
	app.Get("/me", AuthMiddleware(auth), func(c *fiber.Ctx) error {
		userID, _ := c.Locals("userID").(uint)
		return c.JSON(fiber.Map{"user_id": userID})
	})
	return app
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	app := authApp(helper.SetupAuth("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareAcceptsHeaderToken(t *testing.T) {
	auth := helper.SetupAuth("test-secret")
	app := authApp(auth)

	token, err := auth.GenerateAccessToken(7, "20230001", false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareAcceptsCookieToken(t *testing.T) {
	auth := helper.SetupAuth("test-secret")
	app := authApp(auth)

	token, err := auth.GenerateAccessToken(7, "20230001", false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	auth := helper.SetupAuth("test-secret")
	app := authApp(auth)

	token, err := auth.GenerateRefreshToken(7, "20230001", false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
