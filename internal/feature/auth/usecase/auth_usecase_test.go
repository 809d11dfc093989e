package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gym_backend/internal/feature/auth/domain/entity"
	"gym_backend/internal/platform/config"
)

// memorySessionRepo はテスト用のインメモリSessionRepositoryです。
type memorySessionRepo struct {
	sessions map[string]*entity.Session
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{sessions: map[string]*entity.Session{}}
}

func (m *memorySessionRepo) Create(ctx context.Context, s *entity.Session) error {
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

func (m *memorySessionRepo) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memorySessionRepo) Revoke(ctx context.Context, id string) error {
	s, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	now := time.Now()
	s.RevokedAt = &now
	return nil
}

func (m *memorySessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	var n int64
	for id, s := range m.sessions {
		if s.IsExpired() {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

// plainCodec はセッションIDをそのままトークンとして使うテスト用Codecです。
type plainCodec struct{}

func (plainCodec) Generate(sessionID string, _ time.Time) (string, error) { return sessionID, nil }
func (plainCodec) Parse(token string) (string, error) {
	if token == "" {
		return "", ErrSessionNotFound
	}
	return token, nil
}

func newTestUsecase(repo SessionRepository, ttl time.Duration) *AuthUsecase {
	admin := config.AdminConfig{ID: "admin", Password: "correct-password"}
	return NewAuthUsecase(admin, repo, plainCodec{}, ttl)
}

func TestAuthUsecase_Login(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		password string
		wantErr  error
	}{
		{"success: correct credentials", "admin", "correct-password", nil},
		{"failure: wrong password", "admin", "wrong-password", ErrInvalidCredentials},
		{"failure: wrong id", "root", "correct-password", ErrInvalidCredentials},
		{"failure: both empty", "", "", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemorySessionRepo()
			uc := newTestUsecase(repo, time.Hour)

			result, err := uc.Login(context.Background(), tt.id, tt.password, "test-agent", "127.0.0.1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				assert.Empty(t, repo.sessions, "no session should be created on failure")
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, result.Token)
			assert.Len(t, result.Token, 64, "token should carry the 64-char hex session id")
			assert.WithinDuration(t, time.Now().Add(time.Hour), result.ExpiresAt, 5*time.Second)
			assert.Len(t, repo.sessions, 1, "one session should be stored")
		})
	}
}

func TestAuthUsecase_Login_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-password"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := config.AdminConfig{ID: "admin", PasswordHash: string(hash)}
	uc := NewAuthUsecase(admin, newMemorySessionRepo(), plainCodec{}, time.Hour)

	_, err = uc.Login(context.Background(), "admin", "hashed-password", "", "")
	assert.NoError(t, err, "bcrypt hash mode should accept the correct password")

	_, err = uc.Login(context.Background(), "admin", "other", "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthUsecase_Login_NoPasswordConfigured(t *testing.T) {
	admin := config.AdminConfig{ID: "admin"}
	uc := NewAuthUsecase(admin, newMemorySessionRepo(), plainCodec{}, time.Hour)

	// パスワード未設定の管理者アカウントには誰もログインできない
	_, err := uc.Login(context.Background(), "admin", "", "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthUsecase_Validate(t *testing.T) {
	t.Run("success: valid session", func(t *testing.T) {
		repo := newMemorySessionRepo()
		uc := newTestUsecase(repo, time.Hour)

		result, err := uc.Login(context.Background(), "admin", "correct-password", "", "")
		require.NoError(t, err)

		session, err := uc.Validate(context.Background(), result.Token)
		require.NoError(t, err)
		assert.True(t, session.IsValid())
		assert.Positive(t, session.Remaining())
	})

	t.Run("failure: unknown token", func(t *testing.T) {
		uc := newTestUsecase(newMemorySessionRepo(), time.Hour)

		_, err := uc.Validate(context.Background(), "no-such-session")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("failure: expired session renders logged-out", func(t *testing.T) {
		// 過去の有効期限を持つセッションはログイン済みとして扱われない
		repo := newMemorySessionRepo()
		uc := newTestUsecase(repo, time.Hour)

		result, err := uc.Login(context.Background(), "admin", "correct-password", "", "")
		require.NoError(t, err)
		repo.sessions[result.Token].ExpiresAt = time.Now().Add(-time.Minute)

		_, err = uc.Validate(context.Background(), result.Token)
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("failure: revoked session", func(t *testing.T) {
		repo := newMemorySessionRepo()
		uc := newTestUsecase(repo, time.Hour)

		result, err := uc.Login(context.Background(), "admin", "correct-password", "", "")
		require.NoError(t, err)
		require.NoError(t, uc.Logout(context.Background(), result.Token))

		_, err = uc.Validate(context.Background(), result.Token)
		assert.ErrorIs(t, err, ErrSessionExpired)
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	t.Run("revokes the session", func(t *testing.T) {
		repo := newMemorySessionRepo()
		uc := newTestUsecase(repo, time.Hour)

		result, err := uc.Login(context.Background(), "admin", "correct-password", "", "")
		require.NoError(t, err)

		require.NoError(t, uc.Logout(context.Background(), result.Token))
		assert.True(t, repo.sessions[result.Token].IsRevoked())
	})

	t.Run("logout of unknown session succeeds", func(t *testing.T) {
		uc := newTestUsecase(newMemorySessionRepo(), time.Hour)
		assert.NoError(t, uc.Logout(context.Background(), "gone"))
	})
}
