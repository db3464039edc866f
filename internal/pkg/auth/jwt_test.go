package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/mertc/coursehub/internal/app/models"
)

func testJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:     7,
		Email:  "jane@example.com",
		RoleID: models.RoleStudent,
	}
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testJWTService(time.Hour)

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected non-empty token pair")
	}
	if expiresIn != 3600 {
		t.Errorf("expected expiresIn 3600, got %d", expiresIn)
	}
	if refreshExpiresIn != 86400 {
		t.Errorf("expected refreshExpiresIn 86400, got %d", refreshExpiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(access)
	if err != nil {
		t.Fatalf("unexpected error validating token: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("expected userID 7, got %d", claims.UserID)
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("unexpected email %q", claims.Email)
	}
	if claims.RoleID != models.RoleStudent {
		t.Errorf("unexpected roleID %d", claims.RoleID)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testJWTService(-time.Minute)

	access, _, _, _, err := svc.GenerateTokenPair(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.ValidateAndExtractClaims(access)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateTokenSignedWithOtherSecret(t *testing.T) {
	issuer := testJWTService(time.Hour)
	verifier := NewJWTService(JWTConfig{
		SecretKey:      "another-secret",
		AccessTokenExp: time.Hour,
	})

	access, _, _, _, err := issuer.GenerateTokenPair(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := verifier.ValidateAndExtractClaims(access); err == nil {
		t.Fatal("expected validation to fail for a token signed with a different secret")
	}
}

func TestValidateEmptyToken(t *testing.T) {
	svc := testJWTService(time.Hour)
	if _, err := svc.ValidateAndExtractClaims(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
		{"missing scheme", "abc.def.ghi", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"lowercase scheme", "bearer abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
