package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"time"

	"taskgate/config"
	"taskgate/internal/domain/entity"
	domainerrors "taskgate/internal/domain/errors"
	"taskgate/internal/domain/service"
	"taskgate/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	minSecretKeyLength = 32
	opaqueSecretBytes  = 32

	// Domain labels keep a refresh hash from ever matching a reset hash.
	refreshHashLabel = "taskgate/refresh/v1"
	resetHashLabel   = "taskgate/password-reset/v1"
)

// tokenCodec signs HS256 access tokens and derives keyed hashes for opaque
// refresh and reset secrets. Only the hashes are ever persisted.
type tokenCodec struct {
	accessKey  []byte
	hashKey    []byte
	issuer     string
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenCodec fails when either secret is missing or shorter than 32 bytes.
func NewTokenCodec(cfg *config.Config) (service.TokenCodec, error) {
	return newTokenCodec(cfg, time.Now)
}

func newTokenCodec(cfg *config.Config, now func() time.Time) (*tokenCodec, error) {
	if len(cfg.SecretKey.Access) < minSecretKeyLength {
		return nil, errors.Errorf("secretKey.access must be at least %d bytes", minSecretKeyLength)
	}
	if len(cfg.SecretKey.Refresh) < minSecretKeyLength {
		return nil, errors.Errorf("secretKey.refresh must be at least %d bytes", minSecretKeyLength)
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("secretKey.access and secretKey.refresh must differ")
	}
	if cfg.Auth == nil {
		return nil, errors.New("auth configuration is required")
	}

	return &tokenCodec{
		accessKey:  []byte(cfg.SecretKey.Access),
		hashKey:    []byte(cfg.SecretKey.Refresh),
		issuer:     cfg.Auth.Issuer,
		audience:   cfg.Auth.Audience,
		accessTTL:  cfg.Auth.AccessTokenTTL,
		refreshTTL: cfg.Auth.RefreshTokenTTL,
		now:        now,
	}, nil
}

func (c *tokenCodec) CreateAccessToken(user *entity.User, sessionID uuid.UUID) (string, time.Time, error) {
	issuedAt := c.now().UTC()
	expiresAt := issuedAt.Add(c.accessTTL)

	claims := service.AccessClaims{
		Email: user.Email,
		Role:  user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID.String(),
			Subject:   user.ID.String(),
			Issuer:    c.issuer,
			Audience:  jwt.ClaimStrings{c.audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.accessKey)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign access token")
	}

	return token, expiresAt, nil
}

func (c *tokenCodec) ParseAccessToken(token string) (*service.AccessClaims, error) {
	claims := &service.AccessClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return c.accessKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithAudience(c.audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrInvalidToken.WithDetails(err.Error())
	}
	if !parsed.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	if _, err := claims.UserID(); err != nil {
		return nil, domainerrors.ErrInvalidToken.WithDetails("malformed subject")
	}
	if _, err := claims.SessionID(); err != nil {
		return nil, domainerrors.ErrInvalidToken.WithDetails("malformed token id")
	}
	if _, ok := entity.ParseRole(claims.Role); !ok {
		return nil, domainerrors.ErrInvalidToken.WithDetails("unknown role")
	}

	return claims, nil
}

func (c *tokenCodec) CreateRefreshSecret() (*service.RefreshSecret, error) {
	raw, err := newOpaqueSecret()
	if err != nil {
		return nil, err
	}

	return &service.RefreshSecret{
		Raw:       raw,
		Hash:      c.HashRefreshSecret(raw),
		ExpiresAt: c.now().UTC().Add(c.refreshTTL),
	}, nil
}

func (c *tokenCodec) HashRefreshSecret(raw string) string {
	return c.keyedHash(refreshHashLabel, raw)
}

func (c *tokenCodec) NewResetToken() (string, string, error) {
	raw, err := newOpaqueSecret()
	if err != nil {
		return "", "", err
	}

	return raw, c.HashGenericToken(raw), nil
}

func (c *tokenCodec) HashGenericToken(raw string) string {
	return c.keyedHash(resetHashLabel, raw)
}

func (c *tokenCodec) keyedHash(label, raw string) string {
	mac := hmac.New(sha256.New, c.hashKey)
	mac.Write([]byte(label))
	mac.Write([]byte{0})
	mac.Write([]byte(raw))

	return hex.EncodeToString(mac.Sum(nil))
}

// newOpaqueSecret returns 32 random bytes, URL-safe base64 without padding.
func newOpaqueSecret() (string, error) {
	b := make([]byte, opaqueSecretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
