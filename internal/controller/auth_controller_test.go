package controller

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vibe-notes-be/internal/dto"
	"vibe-notes-be/internal/pkg/serverutils"
	"vibe-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	registerErr    error
	loginErr       error
	loggedOut      []string
	passwordResult *dto.CommandResult
	passwords      []string
}

func (s *stubAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &dto.RegisterResponse{Id: uuid.New(), Email: req.Email}, nil
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &dto.LoginResponse{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	s.loggedOut = append(s.loggedOut, token)
	return nil
}

func (s *stubAuthService) UpdatePassword(ctx context.Context, token string, req *dto.UpdatePasswordRequest) *dto.CommandResult {
	s.passwords = append(s.passwords, req.Password)
	return s.passwordResult
}

func newAuthApp(svc *stubAuthService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewAuthController(svc, false).RegisterRoutes(app.Group("/api"))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthController_Register(t *testing.T) {
	app := newAuthApp(&stubAuthService{})
	assert.Equal(t, fiber.StatusCreated, postJSON(t, app, "/api/auth/register", `{"email":"a@x.com","password":"12345678"}`))
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/api/auth/register", `{"email":"nope","password":"1"}`))

	taken := newAuthApp(&stubAuthService{registerErr: service.ErrEmailTaken})
	assert.Equal(t, fiber.StatusConflict, postJSON(t, taken, "/api/auth/register", `{"email":"a@x.com","password":"12345678"}`))
}

func TestAuthController_LoginSetsSessionCookie(t *testing.T) {
	app := newAuthApp(&stubAuthService{})

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"a@x.com","password":"12345678"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Set-Cookie"), serverutils.SessionCookieName+"=tok")

	bad := newAuthApp(&stubAuthService{loginErr: service.ErrInvalidCredentials})
	assert.Equal(t, fiber.StatusUnauthorized, postJSON(t, bad, "/api/auth/login", `{"email":"a@x.com","password":"x"}`))
}

func TestAuthController_LogoutEndsSession(t *testing.T) {
	svc := &stubAuthService{}
	app := newAuthApp(svc)

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer tok")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"tok"}, svc.loggedOut)
}

func TestAuthController_UpdatePassword(t *testing.T) {
	tests := []struct {
		name   string
		result *dto.CommandResult
		body   string
		want   int
	}{
		{"updated", dto.OkResult(), `{"password":"new-secret"}`, fiber.StatusOK},
		{"no session", dto.UnauthenticatedResult("/login"), `{"password":"new-secret"}`, fiber.StatusUnauthorized},
		{"lookup failed", dto.AuthErrorResult("authentication failed: boom"), `{"password":"new-secret"}`, fiber.StatusUnauthorized},
		{"storage failed", dto.FailedResult("connection reset"), `{"password":"new-secret"}`, fiber.StatusInternalServerError},
		{"too short", dto.OkResult(), `{"password":"short"}`, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubAuthService{passwordResult: tt.result}
			app := newAuthApp(svc)

			assert.Equal(t, tt.want, postJSON(t, app, "/api/auth/password", tt.body))
			if tt.want == fiber.StatusBadRequest {
				assert.Empty(t, svc.passwords)
			}
		})
	}
}

func TestAuthController_UpdatePasswordRedirectsFormPosts(t *testing.T) {
	app := newAuthApp(&stubAuthService{passwordResult: dto.UnauthenticatedResult("/login")})

	req := httptest.NewRequest("POST", "/api/auth/password", strings.NewReader("password=new-secret"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}
