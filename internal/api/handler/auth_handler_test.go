package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/longrunpc/calmato-be/internal/api"
	"github.com/longrunpc/calmato-be/internal/api/handler"
	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

type stubAuthService struct {
	registered map[string]*domain.User
	nextID     int64
}

func newStubAuthService() *stubAuthService {
	return &stubAuthService{registered: make(map[string]*domain.User)}
}

func (s *stubAuthService) envelope(u *domain.User) *ports.AuthResult {
	return &ports.AuthResult{
		AccessToken: "token-" + u.Email,
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		User:        u,
	}
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	email := strings.ToLower(input.Email)
	if _, exists := s.registered[email]; exists {
		return nil, domain.ErrEmailTaken
	}
	s.nextID++
	u := &domain.User{ID: s.nextID, Email: email, Name: input.Name, Role: domain.RoleUser}
	s.registered[email] = u
	return s.envelope(u), nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*ports.AuthResult, error) {
	u, ok := s.registered[strings.ToLower(email)]
	if !ok || password != "Sup3r!pass" {
		return nil, domain.ErrInvalidCredentials
	}
	return s.envelope(u), nil
}

func (s *stubAuthService) GetProfile(_ context.Context, userID int64) (*domain.User, error) {
	for _, u := range s.registered {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubAuthService) ListUsers(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(s.registered))
	for _, u := range s.registered {
		out = append(out, *u)
	}
	return out, nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

func doJSON(e *echo.Echo, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	h := handler.NewAuthHandler(newStubAuthService())

	rec := doJSON(e, h.Register, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","name":"Alice","password":"Sup3r!pass"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if token, _ := resp["accessToken"].(string); token == "" {
		t.Fatalf("missing access token")
	}
	if resp["tokenType"] != "Bearer" {
		t.Fatalf("unexpected token type: %v", resp["tokenType"])
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password material leaked: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_WeakPassword(t *testing.T) {
	e := newEcho()
	h := handler.NewAuthHandler(newStubAuthService())

	for _, pw := range []string{"short1!", "alllowercase1!", "NOLOWERCASE1!", "NoDigits!!", "NoSpecial123"} {
		rec := doJSON(e, h.Register, http.MethodPost, "/auth/register",
			`{"email":"a@example.com","name":"A","password":"`+pw+`"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("password %q: expected 400, got %d", pw, rec.Code)
		}
	}
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	e := newEcho()
	h := handler.NewAuthHandler(newStubAuthService())

	rec := doJSON(e, h.Register, http.MethodPost, "/auth/register",
		`{"email":"not-an-email","name":"A","password":"Sup3r!pass"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e := newEcho()
	h := handler.NewAuthHandler(newStubAuthService())

	body := `{"email":"bob@example.com","name":"Bob","password":"Sup3r!pass"}`
	if rec := doJSON(e, h.Register, http.MethodPost, "/auth/register", body); rec.Code != http.StatusCreated {
		t.Fatalf("first register failed: %d", rec.Code)
	}

	rec := doJSON(e, h.Register, http.MethodPost, "/auth/register", body)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthHandler_Login(t *testing.T) {
	e := newEcho()
	svc := newStubAuthService()
	h := handler.NewAuthHandler(svc)

	doJSON(e, h.Register, http.MethodPost, "/auth/register",
		`{"email":"carol@example.com","name":"Carol","password":"Sup3r!pass"}`)

	rec := doJSON(e, h.Login, http.MethodPost, "/auth/login",
		`{"email":"carol@example.com","password":"Sup3r!pass"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Wrong password and unknown email both map to 401.
	rec = doJSON(e, h.Login, http.MethodPost, "/auth/login",
		`{"email":"carol@example.com","password":"wrongpass"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", rec.Code)
	}
	rec = doJSON(e, h.Login, http.MethodPost, "/auth/login",
		`{"email":"nobody@example.com","password":"Sup3r!pass"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email: expected 401, got %d", rec.Code)
	}
}
