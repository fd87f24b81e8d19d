package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type mockAuthenticator struct {
	token string
	user  *User
	err   error
}

func (m *mockAuthenticator) Authenticate(_ *http.Request, token string) (*User, error) {
	if token != m.token {
		return nil, ErrUnauthorized
	}
	return m.user, m.err
}

func TestAuthMiddleware(t *testing.T) {
	auth := &mockAuthenticator{
		token: "valid",
		user:  &User{UID: "staff-1", Token: "valid"},
	}

	handler := Auth(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			t.Fatalf("expected user in context")
		}
		if TokenFromContext(r.Context()) != "valid" {
			t.Fatalf("expected token in context")
		}
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("missing token returns 401 json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/api/orders", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rr.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("expected json body: %v", err)
		}
		if body["reason"] != ReasonMissingToken {
			t.Fatalf("expected missing_token reason, got %s", body["reason"])
		}
	})

	t.Run("invalid token returns 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/api/orders", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rr.Code)
		}
	})

	t.Run("valid bearer header passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/api/orders", nil)
		req.Header.Set("Authorization", "Bearer valid")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
	})

	t.Run("session cookie passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/api/orders", nil)
		req.AddCookie(&http.Cookie{Name: "__session", Value: "valid"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
	})
}

func TestCSRFMiddleware(t *testing.T) {
	handler := CSRF(CSRFConfig{CookieName: "admin_csrf", HeaderName: "X-CSRF-Token"})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if CSRFTokenFromContext(r.Context()) == "" {
				t.Fatalf("expected csrf token in context")
			}
			w.WriteHeader(http.StatusOK)
		}),
	)

	t.Run("get issues cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		cookies := rr.Result().Cookies()
		if len(cookies) != 1 || cookies[0].Name != "admin_csrf" || cookies[0].Value == "" {
			t.Fatalf("expected csrf cookie, got %#v", cookies)
		}
	})

	t.Run("post without header is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/api/orders/5/ship", nil)
		req.AddCookie(&http.Cookie{Name: "admin_csrf", Value: "tok"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rr.Code)
		}
	})

	t.Run("post with matching header passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/api/orders/5/ship", nil)
		req.AddCookie(&http.Cookie{Name: "admin_csrf", Value: "tok"})
		req.Header.Set("X-CSRF-Token", "tok")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
	})
}

func TestRequestInfoMiddleware(t *testing.T) {
	handler := RequestInfoMiddleware("/admin/")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, ok := RequestInfoFromContext(r.Context())
		if !ok {
			t.Fatalf("expected request info")
		}
		if info.BasePath != "/admin" {
			t.Fatalf("expected /admin base, got %s", info.BasePath)
		}
		if info.Path != "/admin/api/orders" {
			t.Fatalf("unexpected path %s", info.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/api/orders", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	if got := BasePathFromContext(req.Context()); got != "/" {
		t.Fatalf("expected fallback base path, got %s", got)
	}
}
