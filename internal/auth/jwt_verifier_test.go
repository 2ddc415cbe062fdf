package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"forum/internal/domain"
	"forum/internal/domain/models"
)

func newTestVerifier(t *testing.T) (*AdminJWTVerifier, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}
	kf := func(*jwt.Token) (any, error) { return &key.PublicKey, nil }
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewKeyfuncVerifier(kf, "admin", logger), key
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims *models.AdminClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	return s
}

func TestAdminJWTVerifier_VerifyToken(t *testing.T) {
	v, key := newTestVerifier(t)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}

	valid := func(role string) *models.AdminClaims {
		return &models.AdminClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			Role: role,
		}
	}
	expired := valid("admin")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	noSubject := valid("admin")
	noSubject.Subject = ""

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "admin", token: sign(t, jwt.SigningMethodRS256, key, valid("admin"))},
		{name: "wrong role", token: sign(t, jwt.SigningMethodRS256, key, valid("authenticated")), wantErr: domain.ErrForbidden},
		{name: "expired", token: sign(t, jwt.SigningMethodRS256, key, expired), wantErr: domain.ErrUnauthorized},
		{name: "no subject", token: sign(t, jwt.SigningMethodRS256, key, noSubject), wantErr: domain.ErrUnauthorized},
		{name: "other key", token: sign(t, jwt.SigningMethodRS256, otherKey, valid("admin")), wantErr: domain.ErrUnauthorized},
		{name: "hmac", token: sign(t, jwt.SigningMethodHS256, []byte("secret"), valid("admin")), wantErr: domain.ErrUnauthorized},
		{name: "garbage", token: "not.a.token", wantErr: domain.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := v.VerifyToken(tt.token)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("VerifyToken() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("VerifyToken() error = %v", err)
			}
			if claims.Subject != "user-1" {
				t.Errorf("Subject = %q", claims.Subject)
			}
		})
	}
}

func TestNewJWTVerifier_RequiresURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err := NewJWTVerifier("", "admin", logger); err == nil {
		t.Error("NewJWTVerifier(\"\") returned no error")
	}
}
