package jwt_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendsmart/pkg/security/jwt"
)

func newProtectedApp(gen *jwt.Generator) *fiber.App {
	app := fiber.New()
	app.Get("/protected", jwt.NewAuthMiddleware(gen), func(c *fiber.Ctx) error {
		ident, ok := jwt.IdentityFrom(c)
		if !ok {
			return c.SendStatus(http.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"username": ident.Username, "id": ident.UserID.Hex()})
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	gen := jwt.NewGenerator("mw-secret", "spendsmart", time.Hour)
	user := testUser()
	token, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	app := newProtectedApp(gen)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "no bearer prefix", header: token, wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer garbage", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus == http.StatusOK {
				var body map[string]string
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, "alice", body["username"])
				assert.Equal(t, user.ID.Hex(), body["id"])
			}
		})
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	gen := jwt.NewGenerator("mw-secret", "spendsmart", time.Hour)
	expiredGen := jwt.NewGenerator("mw-secret", "spendsmart", -time.Minute)
	token, err := expiredGen.Generate(context.Background(), testUser())
	require.NoError(t, err)

	app := newProtectedApp(gen)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareNoSecret(t *testing.T) {
	// A generator without a secret reports a server error, not an
	// authorization failure.
	signed, err := jwt.NewGenerator("some-secret", "spendsmart", time.Hour).Generate(context.Background(), testUser())
	require.NoError(t, err)

	app := newProtectedApp(jwt.NewGenerator("", "spendsmart", time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
