package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestNewGenerator は各種設定でGeneratorが正しく生成されることを検証します。
func TestNewGenerator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		secret     string
		expiration time.Duration
	}{
		{"standard config", "my-secret-key", time.Hour},
		{"long expiration", "secret", 24 * time.Hour * 30},
		{"short expiration", "s", time.Minute},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator(tt.secret, tt.expiration)

			if gen == nil {
				t.Fatal("expected generator to be non-nil")
			}
			if string(gen.secret) != tt.secret {
				t.Errorf("expected secret %q, got %q", tt.secret, string(gen.secret))
			}
			if gen.expiration != tt.expiration {
				t.Errorf("expected expiration %v, got %v", tt.expiration, gen.expiration)
			}
		})
	}
}

// TestGenerator_GenerateToken は生成されたJWTトークンが有効で正しいクレームを含むことを検証します。
func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		subject    string
		expiration time.Duration
	}{
		{"frontend client", "frontend", time.Hour},
		{"cli client", "recommend-cli", 24 * time.Hour},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator("test-secret", tt.expiration)
			tokenStr, err := gen.GenerateToken(tt.subject)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tokenStr == "" {
				t.Fatal("expected non-empty token")
			}

			token, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (any, error) {
				if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
					t.Errorf("unexpected signing method: %v", tok.Header["alg"])
				}
				return []byte("test-secret"), nil
			})
			if err != nil {
				t.Fatalf("failed to parse token: %v", err)
			}
			if !token.Valid {
				t.Error("expected token to be valid")
			}

			if sub, _ := token.Claims.GetSubject(); sub != tt.subject {
				t.Errorf("expected sub %q, got %q", tt.subject, sub)
			}
			if iss, _ := token.Claims.GetIssuer(); iss != Issuer {
				t.Errorf("expected iss %q, got %q", Issuer, iss)
			}
		})
	}
}

// TestGenerator_GenerateToken_Expiration はトークンのexp・iatクレームが注入した時刻から計算されることを検証します。
func TestGenerator_GenerateToken_Expiration(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	gen := NewGenerator("test-secret", 2*time.Hour)
	gen.now = func() time.Time { return fixed }

	tokenStr, err := gen.GenerateToken("frontend")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(tokenStr, claims)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}

	exp, _ := claims.GetExpirationTime()
	iat, _ := claims.GetIssuedAt()
	if !exp.Time.Equal(fixed.Add(2 * time.Hour)) {
		t.Errorf("expected exp %v, got %v", fixed.Add(2*time.Hour), exp.Time)
	}
	if !iat.Time.Equal(fixed) {
		t.Errorf("expected iat %v, got %v", fixed, iat.Time)
	}
}

// TestGenerator_GenerateToken_Errors はシークレットやsubjectが空の場合にエラーになることを検証します。
func TestGenerator_GenerateToken_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewGenerator("", time.Hour).GenerateToken("frontend"); err == nil {
		t.Error("expected error for empty secret")
	}
	if _, err := NewGenerator("secret", time.Hour).GenerateToken(""); err == nil {
		t.Error("expected error for empty subject")
	}
}

// TestGenerator_GenerateToken_DifferentSubjectsProduceDifferentTokens は異なるクライアントに対して異なるトークンが生成されることを検証します。
func TestGenerator_GenerateToken_DifferentSubjectsProduceDifferentTokens(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)

	token1, _ := gen.GenerateToken("frontend")
	token2, _ := gen.GenerateToken("recommend-cli")

	if token1 == token2 {
		t.Error("expected different tokens for different subjects")
	}
}
