package authValidator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signupApp() *fiber.App {
	app := fiber.New()
	app.Post("/signup", Signup(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestSignupValidatorAccepts(t *testing.T) {
	app := signupApp()

	body := `{"name":"Asha Verma","email":"asha@example.com","mobile":"9876543210","password":"secret123"}`
	req := httptest.NewRequest("POST", "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSignupValidatorRejectsBadFields(t *testing.T) {
	app := signupApp()

	tests := []struct {
		name string
		body string
	}{
		{"short name", `{"name":"Al","email":"a@example.com","password":"secret123"}`},
		{"bad email", `{"name":"Asha Verma","email":"not-an-email","password":"secret123"}`},
		{"bad mobile", `{"name":"Asha Verma","email":"a@example.com","mobile":"12","password":"secret123"}`},
		{"short password", `{"name":"Asha Verma","email":"a@example.com","password":"short"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/signup", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, isValidEmail("user@example.com"))
	assert.True(t, isValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, isValidEmail("user@"))
	assert.False(t, isValidEmail("example.com"))
}

func TestIsValidMobile(t *testing.T) {
	assert.True(t, isValidMobile("9876543210"))
	assert.False(t, isValidMobile("98765"))
	assert.False(t, isValidMobile("98765432101"))
	assert.False(t, isValidMobile("98765abc10"))
}
