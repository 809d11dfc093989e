package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestCodec_GenerateAndParse は生成したトークンが検証を通りセッションIDが復元されることを検証します。
func TestCodec_GenerateAndParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		sessionID string
	}{
		{"hex session id", "a3f1c2d4e5b6a7f8a3f1c2d4e5b6a7f8a3f1c2d4e5b6a7f8a3f1c2d4e5b6a7f8"},
		{"short id", "s1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			codec := NewCodec("test-secret")
			tokenStr, err := codec.Generate(tt.sessionID, time.Now().Add(time.Hour))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tokenStr == "" {
				t.Fatal("expected non-empty token")
			}

			sid, err := codec.Parse(tokenStr)
			if err != nil {
				t.Fatalf("failed to parse token: %v", err)
			}
			if sid != tt.sessionID {
				t.Errorf("expected session id %q, got %q", tt.sessionID, sid)
			}
		})
	}
}

// TestCodec_Parse_Expired は期限切れトークンが拒否されることを検証します。
func TestCodec_Parse_Expired(t *testing.T) {
	t.Parallel()

	codec := NewCodec("test-secret")
	tokenStr, err := codec.Generate("session-id", time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := codec.Parse(tokenStr); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

// TestCodec_Parse_WrongSecret は別シークレットで署名されたトークンが拒否されることを検証します。
func TestCodec_Parse_WrongSecret(t *testing.T) {
	t.Parallel()

	other := NewCodec("other-secret")
	tokenStr, err := other.Generate("session-id", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	codec := NewCodec("test-secret")
	if _, err := codec.Parse(tokenStr); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}

// TestCodec_Parse_WrongAlgorithm はHMAC以外のアルゴリズムが拒否されることを検証します。
func TestCodec_Parse_WrongAlgorithm(t *testing.T) {
	t.Parallel()

	// alg=noneのトークンを手作りする
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sid": "session-id",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	codec := NewCodec("test-secret")
	if _, err := codec.Parse(tokenStr); err == nil {
		t.Error("expected unsigned token to be rejected")
	}
}

// TestCodec_Parse_MissingSid はsidクレームを持たないトークンが拒否されることを検証します。
func TestCodec_Parse_MissingSid(t *testing.T) {
	t.Parallel()

	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	codec := NewCodec("test-secret")
	if _, err := codec.Parse(signed); err == nil {
		t.Error("expected token without sid to be rejected")
	}
}
