package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ddcrdc/content-api/internal/core/domain"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, username, password string) (string, *domain.AdminUser, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.AdminUser, error) {
	return s.loginFn(ctx, username, password)
}

func newLoginContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (string, *domain.AdminUser, error) {
			if username != "admin" || password != "correct" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "signed-token", &domain.AdminUser{ID: 1, Username: "admin"}, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := newLoginContext(t, `{"username":"admin","password":"correct"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Fatalf("unexpected token: %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["id"] != float64(1) || user["username"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.AdminUser, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, nil)

	c, _ := newLoginContext(t, `{"username":"admin","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.AdminUser, error) {
			t.Fatalf("service should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	for _, body := range []string{`{}`, `{"username":"admin"}`, `{"password":"x"}`} {
		c, _ := newLoginContext(t, body)
		if err := h.Login(c); !errors.Is(err, domain.ErrMissingCredentials) {
			t.Fatalf("body %s: expected ErrMissingCredentials, got %v", body, err)
		}
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.AdminUser, error) {
			t.Fatalf("service should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, _ := newLoginContext(t, "not-json")
	err := h.Login(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
