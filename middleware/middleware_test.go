package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"restaurant-api/models"
)

var testSecret = []byte("test-secret")

func init() {
	gin.SetMode(gin.TestMode)
}

func newGuardedRouter(roles ...models.UserRole) *gin.Engine {
	r := gin.New()
	r.GET("/guarded", append(StaffOnly(true, testSecret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": GetUserID(c), "role": GetRole(c)})
	})...)
	return r
}

func do(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingToken(t *testing.T) {
	w := do(newGuardedRouter(models.RoleAdmin), "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuth_BadSignature(t *testing.T) {
	token, err := GenerateToken(&models.User{ID: 1, Role: models.RoleAdmin}, []byte("other"))
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if w := do(newGuardedRouter(models.RoleAdmin), token); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuth_RoleEnforced(t *testing.T) {
	waiter, _ := GenerateToken(&models.User{ID: 2, Role: models.RoleWaiter}, testSecret)
	admin, _ := GenerateToken(&models.User{ID: 3, Role: models.RoleAdmin}, testSecret)
	r := newGuardedRouter(models.RoleAdmin)

	if w := do(r, waiter); w.Code != http.StatusForbidden {
		t.Fatalf("waiter status = %d, want 403", w.Code)
	}
	w := do(r, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("admin status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"user":3`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestStaffOnly_DisabledIsOpen(t *testing.T) {
	if hs := StaffOnly(false, testSecret, models.RoleAdmin); len(hs) != 0 {
		t.Fatalf("handlers = %d, want none", len(hs))
	}
}

func TestRequestID_AssignsAndKeeps(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestID(), Logger(slog.New(slog.NewJSONHandler(&buf, nil))))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if _, err := uuid.Parse(w.Header().Get(RequestIDHeader)); err != nil {
		t.Fatalf("generated id %q: %v", w.Header().Get(RequestIDHeader), err)
	}

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, id)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != id {
		t.Fatalf("request id = %q, want %q", got, id)
	}
	if !strings.Contains(buf.String(), id) {
		t.Fatalf("log missing request id: %s", buf.String())
	}
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/x", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
}
