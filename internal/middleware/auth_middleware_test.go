package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mertc/coursehub/internal/app/models"
	"github.com/mertc/coursehub/internal/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
	mw := NewAuthMiddleware(jwtService)

	router := gin.New()
	protected := router.Group("/protected")
	protected.Use(mw.JWTAuth())
	protected.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	admin := router.Group("/admin")
	admin.Use(mw.JWTAuth(), mw.AdminRequired())
	admin.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, userID, roleID int64) string {
	t.Helper()
	access, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
		ID:     userID,
		Email:  "user@example.com",
		RoleID: roleID,
	})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return access
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, "/protected", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, "/protected", "Token abc")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, "/protected", "Bearer not-a-real-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestJWTAuthValidTokenPasses(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := tokenFor(t, jwtService, 1, models.RoleStudent)

	rec := doRequest(router, "/protected", "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdminRequiredTriad(t *testing.T) {
	router, jwtService := newTestRouter(t)

	t.Run("no token yields 401", func(t *testing.T) {
		rec := doRequest(router, "/admin", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("non-admin token yields 403", func(t *testing.T) {
		token := tokenFor(t, jwtService, 2, models.RoleStudent)
		rec := doRequest(router, "/admin", "Bearer "+token)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("admin token passes", func(t *testing.T) {
		token := tokenFor(t, jwtService, 3, models.RoleAdmin)
		rec := doRequest(router, "/admin", "Bearer "+token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

// The unauthenticated response must not describe the requester in any way.
func TestUnauthenticatedResponseCarriesNoActorDetails(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, "/admin", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string          `json:"code"`
			Message string          `json:"message"`
			Details json.RawMessage `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if body.Success {
		t.Error("expected success=false")
	}
	if body.Error.Details != nil {
		t.Errorf("401 body must not carry details, got %s", body.Error.Details)
	}
	lower := strings.ToLower(rec.Body.String())
	for _, leak := range []string{"userid", "email", "roleid", "actor"} {
		if strings.Contains(lower, leak) {
			t.Errorf("401 body must not reference %q: %s", leak, rec.Body.String())
		}
	}
}

// AdminRequired on its own must answer a bare 401 when no actor was put in
// the context, without describing the request or the actor.
func TestAdminRequiredWithoutActorYieldsBare401(t *testing.T) {
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
	})
	mw := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/admin-only", mw.AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := doRequest(router, "/admin-only", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body struct {
		Error struct {
			Details json.RawMessage `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Error.Details != nil {
		t.Errorf("401 body must not carry details, got %s", body.Error.Details)
	}
}

func TestJWTAuthSetsContextValues(t *testing.T) {
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
	})
	mw := NewAuthMiddleware(jwtService)

	var gotUserID, gotRoleID int64
	var gotEmail string

	router := gin.New()
	router.GET("/me", mw.JWTAuth(), func(c *gin.Context) {
		gotUserID, _ = GetUserID(c)
		gotEmail = c.GetString(ContextEmail)
		gotRoleID = c.GetInt64(ContextRoleID)
		c.Status(http.StatusOK)
	})

	token := tokenFor(t, jwtService, 42, models.RoleInstructor)
	rec := doRequest(router, "/me", "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUserID != 42 {
		t.Errorf("expected userID 42, got %d", gotUserID)
	}
	if gotEmail != "user@example.com" {
		t.Errorf("unexpected email %q", gotEmail)
	}
	if gotRoleID != models.RoleInstructor {
		t.Errorf("expected roleID %d, got %d", models.RoleInstructor, gotRoleID)
	}
}
