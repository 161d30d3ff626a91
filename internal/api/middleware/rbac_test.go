package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubAdminChecker struct {
	admins map[string]bool
}

func (s stubAdminChecker) IsAdmin(_ context.Context, userID string) bool {
	return s.admins[userID]
}

func TestRequireAdmin_Allows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/candidates", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyUserID, "admin_1")

	called := false
	mw := RequireAdmin(stubAdminChecker{admins: map[string]bool{"admin_1": true}})
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireAdmin_Forbids(t *testing.T) {
	for _, userID := range []string{"voter_1", ""} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/candidates", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if userID != "" {
			c.Set(ContextKeyUserID, userID)
		}

		mw := RequireAdmin(stubAdminChecker{admins: map[string]bool{"admin_1": true}})
		handler := mw(func(c echo.Context) error {
			t.Fatalf("should not reach next handler")
			return nil
		})

		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("user %q: expected 403, got %d", userID, rec.Code)
		}
	}
}
