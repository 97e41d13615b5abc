package auth

import (
	"encoding/base64"
	"testing"
	"time"

	"taskgate/config"
	"taskgate/internal/domain/entity"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessKey  = "test_access_secret_key_very_long_for_testing"
	testRefreshKey = "test_refresh_secret_key_very_long_for_testing"
)

func newTestCodecConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
			Issuer:          "taskgate",
			Audience:        "taskgate-api",
		},
	}
	cfg.SecretKey.Access = testAccessKey
	cfg.SecretKey.Refresh = testRefreshKey

	return cfg
}

func newTestCodec(t *testing.T, now func() time.Time) *tokenCodec {
	t.Helper()

	codec, err := newTokenCodec(newTestCodecConfig(), now)
	require.NoError(t, err)

	return codec
}

func testUser() *entity.User {
	return &entity.User{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleUser}
}

func TestNewTokenCodec_RejectsWeakKeys(t *testing.T) {
	cfg := newTestCodecConfig()
	cfg.SecretKey.Access = "short"
	_, err := NewTokenCodec(cfg)
	assert.Error(t, err)

	cfg = newTestCodecConfig()
	cfg.SecretKey.Refresh = ""
	_, err = NewTokenCodec(cfg)
	assert.Error(t, err)

	cfg = newTestCodecConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access
	_, err = NewTokenCodec(cfg)
	assert.Error(t, err)
}

func TestTokenCodec_AccessTokenRoundTrip(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	codec := newTestCodec(t, func() time.Time { return now })
	user := testUser()
	sessionID := uuid.New()

	token, expiresAt, err := codec.CreateAccessToken(user, sessionID)
	require.NoError(t, err)
	assert.Equal(t, now.Add(15*time.Minute), expiresAt)

	claims, err := codec.ParseAccessToken(token)
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	gotSession, err := claims.SessionID()
	require.NoError(t, err)
	assert.Equal(t, sessionID, gotSession)

	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "taskgate", claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"taskgate-api"}, claims.Audience)
}

func TestTokenCodec_ParseAccessToken_Expired(t *testing.T) {
	now := time.Now()
	codec := newTestCodec(t, func() time.Time { return now })

	token, _, err := codec.CreateAccessToken(testUser(), uuid.New())
	require.NoError(t, err)

	codec.now = func() time.Time { return now.Add(16 * time.Minute) }

	_, err = codec.ParseAccessToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
	assert.Equal(t, domainerrors.KindUnauthorized, domainerrors.KindOf(err))
}

func TestTokenCodec_ParseAccessToken_Rejects(t *testing.T) {
	codec := newTestCodec(t, time.Now)
	user := testUser()
	now := time.Now()

	sign := func(method jwt.SigningMethod, key any, claims jwt.Claims) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)

		return token
	}
	validClaims := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub":   user.ID.String(),
			"jti":   uuid.NewString(),
			"email": user.Email,
			"role":  "user",
			"iss":   "taskgate",
			"aud":   "taskgate-api",
			"iat":   now.Unix(),
			"exp":   now.Add(time.Minute).Unix(),
		}
	}

	wrongIssuer := validClaims()
	wrongIssuer["iss"] = "someone-else"
	wrongAudience := validClaims()
	wrongAudience["aud"] = "other-api"
	noExpiry := validClaims()
	delete(noExpiry, "exp")
	badSubject := validClaims()
	badSubject["sub"] = "not-a-uuid"
	badRole := validClaims()
	badRole["role"] = "root"

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "empty", token: ""},
		{name: "wrong key", token: sign(jwt.SigningMethodHS256, []byte("another_secret_key_that_is_long_enough!"), validClaims())},
		{name: "none alg", token: sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims())},
		{name: "HS512", token: sign(jwt.SigningMethodHS512, []byte(testAccessKey), validClaims())},
		{name: "wrong issuer", token: sign(jwt.SigningMethodHS256, []byte(testAccessKey), wrongIssuer)},
		{name: "wrong audience", token: sign(jwt.SigningMethodHS256, []byte(testAccessKey), wrongAudience)},
		{name: "no expiry", token: sign(jwt.SigningMethodHS256, []byte(testAccessKey), noExpiry)},
		{name: "bad subject", token: sign(jwt.SigningMethodHS256, []byte(testAccessKey), badSubject)},
		{name: "unknown role", token: sign(jwt.SigningMethodHS256, []byte(testAccessKey), badRole)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := codec.ParseAccessToken(tt.token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken), "got %v", err)
		})
	}
}

func TestTokenCodec_RefreshSecret(t *testing.T) {
	now := time.Now()
	codec := newTestCodec(t, func() time.Time { return now })

	secret, err := codec.CreateRefreshSecret()
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(secret.Raw)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	assert.Equal(t, codec.HashRefreshSecret(secret.Raw), secret.Hash)
	assert.NotEqual(t, secret.Raw, secret.Hash)
	assert.Len(t, secret.Hash, 64)
	assert.Equal(t, now.UTC().Add(7*24*time.Hour), secret.ExpiresAt)

	other, err := codec.CreateRefreshSecret()
	require.NoError(t, err)
	assert.NotEqual(t, secret.Raw, other.Raw)
}

func TestTokenCodec_HashesAreKeyedAndDomainSeparated(t *testing.T) {
	codec := newTestCodec(t, time.Now)

	cfg := newTestCodecConfig()
	cfg.SecretKey.Refresh = "a_completely_different_refresh_hmac_key"
	otherCodec, err := newTokenCodec(cfg, time.Now)
	require.NoError(t, err)

	raw := "same-raw-secret"
	assert.Equal(t, codec.HashRefreshSecret(raw), codec.HashRefreshSecret(raw))
	assert.NotEqual(t, codec.HashRefreshSecret(raw), otherCodec.HashRefreshSecret(raw))
	assert.NotEqual(t, codec.HashRefreshSecret(raw), codec.HashGenericToken(raw))
}

func TestTokenCodec_NewResetToken(t *testing.T) {
	codec := newTestCodec(t, time.Now)

	raw, hash, err := codec.NewResetToken()
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Equal(t, codec.HashGenericToken(raw), hash)
}
