package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"sauna_api/internal/models"
	"sauna_api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memUsers is an in-memory repository.Authorization.
type memUsers struct {
	byName  map[string]*models.User
	nextID  int
	failErr error
	creates int
}

func newMemUsers() *memUsers { return &memUsers{byName: map[string]*models.User{}} }

func (m *memUsers) Create(_ context.Context, username, hash string) (int, error) {
	m.creates++
	if m.failErr != nil {
		return 0, m.failErr
	}
	if _, ok := m.byName[username]; ok {
		return 0, repository.ErrDuplicateUsername
	}
	m.nextID++
	m.byName[username] = &models.User{ID: m.nextID, Username: username, PasswordHash: hash}
	return m.nextID, nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	return m.byName[username], nil
}

const testSigningKey = "test-signing-key"

func signClaims(t *testing.T, method jwt.SigningMethod, key any, userID int, issued time.Time, ttl time.Duration) string {
	t.Helper()
	tk := jwt.NewWithClaims(method, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issued.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(issued),
		},
		UserID: userID,
	})
	s, err := tk.SignedString(key)
	require.NoError(t, err)
	return s
}

func TestAuthService_SignUpThenSignIn(t *testing.T) {
	users := newMemUsers()
	svc := NewAuthService(users, testSigningKey, time.Hour)
	ctx := context.Background()

	id, err := svc.SignUp(ctx, "sauna-owner", "löyly")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	stored := users.byName["sauna-owner"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "löyly", stored.PasswordHash)
	assert.NoError(t, verifyPassword(stored.PasswordHash, "löyly"))

	token, err := svc.GenerateToken(ctx, "sauna-owner", "löyly")
	require.NoError(t, err)
	uid, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, uid)
}

func TestAuthService_SignUp_Rejects(t *testing.T) {
	ctx := context.Background()

	t.Run("blank username", func(t *testing.T) {
		users := newMemUsers()
		_, err := NewAuthService(users, testSigningKey, 0).SignUp(ctx, "  ", "pw")
		assert.ErrorIs(t, err, ErrEmptyUsername)
		assert.Zero(t, users.creates)
	})

	t.Run("blank password", func(t *testing.T) {
		users := newMemUsers()
		_, err := NewAuthService(users, testSigningKey, 0).SignUp(ctx, "bob", "   ")
		assert.Error(t, err)
		assert.Zero(t, users.creates)
	})

	t.Run("taken username", func(t *testing.T) {
		users := newMemUsers()
		svc := NewAuthService(users, testSigningKey, 0)
		_, err := svc.SignUp(ctx, "bob", "pw")
		require.NoError(t, err)
		_, err = svc.SignUp(ctx, "bob", "pw2")
		assert.ErrorIs(t, err, repository.ErrDuplicateUsername)
	})

	t.Run("repo failure", func(t *testing.T) {
		users := newMemUsers()
		users.failErr = errors.New("db down")
		_, err := NewAuthService(users, testSigningKey, 0).SignUp(ctx, "bob", "pw")
		assert.ErrorIs(t, err, users.failErr)
	})
}

func TestAuthService_GenerateToken_Failures(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	svc := NewAuthService(users, testSigningKey, time.Hour)
	_, err := svc.SignUp(ctx, "eve", "correct")
	require.NoError(t, err)

	_, err = svc.GenerateToken(ctx, "ghost", "pw")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.GenerateToken(ctx, "eve", "wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	users.failErr = errors.New("query failed")
	_, err = svc.GenerateToken(ctx, "eve", "correct")
	assert.ErrorIs(t, err, users.failErr)
}

func TestAuthService_ParseToken(t *testing.T) {
	svc := NewAuthService(newMemUsers(), testSigningKey, time.Hour)
	now := time.Now()

	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	cases := []struct {
		name    string
		token   string
		wantID  int
		wantErr bool
	}{
		{"valid", signClaims(t, jwt.SigningMethodHS256, []byte(testSigningKey), 99, now, time.Hour), 99, false},
		{"malformed", "not-a-jwt", 0, true},
		{"other key", signClaims(t, jwt.SigningMethodHS256, []byte("different-key"), 5, now, time.Hour), 0, true},
		{"expired", signClaims(t, jwt.SigningMethodHS256, []byte(testSigningKey), 11, now.Add(-2*time.Hour), time.Hour), 0, true},
		{"rs256 rejected", signClaims(t, jwt.SigningMethodRS256, rsaKey, 12, now, time.Hour), 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uid, err := svc.ParseToken(tc.token)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, uid)
		})
	}
}

func TestAuthService_TokenTTL(t *testing.T) {
	short := NewAuthService(newMemUsers(), testSigningKey, time.Minute)
	token, err := short.issueToken(3, time.Now().Add(-2*time.Minute))
	require.NoError(t, err)
	_, err = short.ParseToken(token)
	assert.Error(t, err, "token issued 2m ago with 1m ttl must be expired")

	assert.Equal(t, defaultTokenTTL, NewAuthService(newMemUsers(), testSigningKey, 0).tokenTTL)
}
