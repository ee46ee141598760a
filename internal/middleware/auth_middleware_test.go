package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/pkg/auth"
)

func newTestRouter(t *testing.T, jwtService *auth.JWTService, role models.RoleType) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(jwtService)
	router := gin.New()
	router.Use(SecurityHeaders())
	router.GET("/protected", m.RequireAuth(), m.RoleRequired(role), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"accountID": AccountID(c)})
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorMessageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return body.Error.Message
}

func TestRequireAuthGateOrder(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExpiry: time.Hour})
	router := newTestRouter(t, jwtService, models.RoleStudent)

	expired := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExpiry: -time.Minute})
	expiredToken, _, err := expired.GenerateToken(1, "a@example.com", "STUDENT")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	cases := []struct {
		name        string
		header      string
		wantStatus  int
		wantMessage string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authorization header missing"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Invalid authorization format"},
		{"empty token", "Bearer   ", http.StatusUnauthorized, "Token missing"},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized, "Invalid token"},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized, "Token expired"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, tc.header)
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			if got := errorMessageOf(t, w); got != tc.wantMessage {
				t.Errorf("message = %q, want %q", got, tc.wantMessage)
			}
		})
	}
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExpiry: time.Hour})
	router := newTestRouter(t, jwtService, models.RoleStudent)

	token, _, err := jwtService.GenerateToken(7, "a@example.com", "STUDENT")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var body struct {
		AccountID int64 `json:"accountID"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.AccountID != 7 {
		t.Errorf("accountID = %d, want 7", body.AccountID)
	}
}

func TestRoleRequiredRejectsOtherRoles(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExpiry: time.Hour})
	router := newTestRouter(t, jwtService, models.RoleAdmin)

	token, _, err := jwtService.GenerateToken(7, "a@example.com", "STUDENT")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(router, "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestSecurityHeadersOnEveryResponse(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExpiry: time.Hour})
	router := newTestRouter(t, jwtService, models.RoleStudent)

	// Even a rejected request carries the hardening headers
	w := doRequest(router, "")

	want := map[string]string{
		"X-Content-Type-Options":    "nosniff",
		"X-Frame-Options":           "DENY",
		"X-XSS-Protection":          "1; mode=block",
		"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
	}
	for header, value := range want {
		if got := w.Header().Get(header); got != value {
			t.Errorf("%s = %q, want %q", header, got, value)
		}
	}
}
