package serverutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/", handler)
	return app
}

func decode(t *testing.T, body io.Reader) BaseResponse[any] {
	t.Helper()
	var res BaseResponse[any]
	require.NoError(t, json.NewDecoder(body).Decode(&res))
	return res
}

func TestErrorHandlerMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"not found", NewNotFoundError("functionality %d not found", 3), 404, "functionality 3 not found"},
		{"wrapped conflict", fmt.Errorf("move: %w", NewConflictError("name already used")), 409, "name already used"},
		{"validation", &ValidationError{Errors: []FieldError{{Field: "Name", Message: "is required"}}}, 400, "Name is required"},
		{"fiber error", fiber.NewError(fiber.StatusUnprocessableEntity, "bad body"), 422, "bad body"},
		{"internal hides cause", NewInternalError("cannot load", errors.New("pq: secret")), 500, "cannot load"},
		{"unknown", errors.New("boom"), 500, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(func(ctx *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)

			body := decode(t, resp.Body)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestSuccessResponse(t *testing.T) {
	app := newTestApp(func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("ok", map[string]int{"id": 1}))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.True(t, body.Success)
	assert.Equal(t, map[string]interface{}{"id": float64(1)}, body.Data)
}

func TestValidateRequest(t *testing.T) {
	type request struct {
		Name   string   `validate:"required"`
		Type   string   `validate:"required,oneof=FOLDER FUNCTIONALITY"`
		Emails []string `validate:"required,min=1,dive,email"`
	}

	err := ValidateRequest(request{Type: "OTHER", Emails: []string{"not-an-email"}})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 3)
	assert.Contains(t, err.Error(), "Name is required")
	assert.Contains(t, err.Error(), "Type must be one of FOLDER FUNCTIONALITY")

	assert.NoError(t, ValidateRequest(request{Name: "a", Type: "FOLDER", Emails: []string{"qa@company.com"}}))
}

func TestJwtMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	app := fiber.New()
	app.Use(JwtMiddleware)
	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString(fmt.Sprint(ctx.Locals("user_id")))
	})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "42",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "42", string(raw))

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
