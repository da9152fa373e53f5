package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitlife-service/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type stubVerifier struct {
	claims *jwt.Claims
	err    error
}

func (s *stubVerifier) ValidateToken(tokenString string) (*jwt.Claims, error) {
	return s.claims, s.err
}

func newTestRouter(verifier TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(verifier), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	r := newTestRouter(&stubVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r := newTestRouter(&stubVerifier{err: http.ErrAbortHandler})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	r := newTestRouter(&stubVerifier{claims: &jwt.Claims{UserID: 1}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	verifier := &stubVerifier{claims: &jwt.Claims{UserID: 7, Email: "ana@fitlife.co.mz", Role: "staff"}}

	r := gin.New()
	r.GET("/protected", AuthMiddleware(verifier), func(c *gin.Context) {
		id, ok := UserIDFromContext(c)
		if !ok || id != 7 {
			t.Errorf("user id in context = %d (ok=%v), want 7", id, ok)
		}
		if role, _ := c.Get(ContextRole); role != "staff" {
			t.Errorf("role in context = %v, want staff", role)
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestAuthMiddlewareTokenQueryParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	verifier := &stubVerifier{claims: &jwt.Claims{UserID: 7, Role: "staff"}}

	r := gin.New()
	r.GET("/protected", AuthMiddleware(verifier), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected?token=good-token", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestAdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		role string
		want int
	}{
		{"admin", http.StatusOK},
		{"staff", http.StatusForbidden},
	}

	for _, tc := range cases {
		verifier := &stubVerifier{claims: &jwt.Claims{UserID: 1, Role: tc.role}}

		r := gin.New()
		r.GET("/admin", AuthMiddleware(verifier), AdminOnly(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != tc.want {
			t.Errorf("role %s: status = %d, want %d", tc.role, w.Code, tc.want)
		}
	}
}

// Real tokens flow end to end through the middleware.
func TestAuthMiddlewareWithRealVerifier(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := jwt.Config{Secret: "mw-test-secret", Issuer: "fitlife", Audience: "fitlife-backoffice", TTL: time.Hour}
	gen, err := jwt.NewGenerator(cfg)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	ver, err := jwt.NewVerifier(cfg)
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}

	token, _, err := gen.Generate(3, "rui@fitlife.co.mz", "staff")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	r := gin.New()
	r.GET("/protected", AuthMiddleware(verifierFunc(ver.Verify)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

type verifierFunc func(string) (*jwt.Claims, error)

func (f verifierFunc) ValidateToken(tokenString string) (*jwt.Claims, error) {
	return f(tokenString)
}
