package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mahndi/payment-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, phone, password string) (*domain.AccountPublic, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.AccountPublic, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, phone, password string) (*domain.AccountPublic, error) {
	return s.registerFn(ctx, email, phone, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.AccountPublic, error) {
	return s.loginFn(ctx, email, password)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, phone, password string) (*domain.AccountPublic, error) {
			if email != "alice@example.com" || phone != "555-0100" || password != "secret" {
				t.Fatalf("unexpected args: %s %s %s", email, phone, password)
			}
			return &domain.AccountPublic{Email: email, Phone: phone}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/register",
		`{"email":"alice@example.com","phone":"555-0100","password":"secret"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["success"] != true {
		t.Fatalf("expected success:true, got %v", resp["success"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "alice@example.com" || user["phone"] != "555-0100" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	if _, leaked := user["password"]; leaked {
		t.Fatal("response must not contain a password field")
	}
}

func TestAuthHandler_Register_Exists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, phone, password string) (*domain.AccountPublic, error) {
			return nil, domain.ErrAccountExists
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/register",
		`{"email":"bob@example.com","phone":"555-0101","password":"x"}`)
	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["success"] != false || resp["message"] != "User already exists" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestAuthHandler_Register_MissingField(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, phone, password string) (*domain.AccountPublic, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/register", `{"email":"bob@example.com"}`)
	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, phone, password string) (*domain.AccountPublic, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/register", "not-json")
	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.AccountPublic, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.AccountPublic{Email: email, Phone: "555-0100"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["success"] != true {
		t.Fatalf("expected success:true, got %v", resp["success"])
	}
	if _, hasToken := resp["token"]; hasToken {
		t.Fatal("login is stateless: no token must be issued")
	}
}

func TestAuthHandler_Login_NotFound(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.AccountPublic, error) {
			return nil, domain.ErrAccountNotFound
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/login",
		`{"email":"ghost@example.com","password":"x"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "User not found" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_Login_IncorrectPassword(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.AccountPublic, error) {
			return nil, domain.ErrIncorrectPassword
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"bad"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "Incorrect password" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_Login_InternalError(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.AccountPublic, error) {
			return nil, context.DeadlineExceeded
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"secret"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "Internal server error" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}
