package auth

import (
	"testing"

	"taskgate/config"
	domainerrors "taskgate/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func strictStrength() config.PasswordStrengthConfig {
	return config.PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, strictStrength())
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPass123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("StrongPass123!")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_ClampsCost(t *testing.T) {
	hasher := NewBcryptHasherWithCost(1, config.PasswordStrengthConfig{}).(*bcryptHasher)
	assert.Equal(t, bcrypt.MinCost, hasher.cost)

	hasher = NewBcryptHasherWithCost(99, config.PasswordStrengthConfig{}).(*bcryptHasher)
	assert.Equal(t, bcrypt.MaxCost, hasher.cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, strictStrength())

	validPasswords := []string{
		"StrongPass123!",
		"MySecure@Pass1",
		"Complex#Secret9",
		"Pässphräse123!",
	}
	for _, password := range validPasswords {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), password)
	}

	testCases := []struct {
		password    string
		expectedErr *domainerrors.BaseError
		details     string
	}{
		{"123", domainerrors.ErrPasswordStrength, "must be at least 8 characters long"},
		{"PASSWORD123!", domainerrors.ErrPasswordStrength, "must contain at least one lowercase letter"},
		{"password123!", domainerrors.ErrPasswordStrength, "must contain at least one uppercase letter"},
		{"PasswordABC!", domainerrors.ErrPasswordStrength, "must contain at least one number"},
		{"Secure1234", domainerrors.ErrPasswordStrength, "must contain at least one special character"},
		{"Password123!", domainerrors.ErrPasswordForbiddenWords, "contains forbidden words"},
		{"MyAdmin123!", domainerrors.ErrPasswordForbiddenWords, "contains forbidden words"},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			assert.True(t, errors.Is(err, tc.expectedErr), "got %v", err)

			var appErr domainerrors.AppError
			assert.True(t, errors.As(err, &appErr))
			assert.Equal(t, tc.details, appErr.Details())
			assert.Equal(t, domainerrors.KindValidation, appErr.Kind())
		})
	}
}

func TestBcryptHasher_RejectsPasswordsBcryptWouldTruncate(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, config.PasswordStrengthConfig{})

	long := make([]byte, bcryptMaxPasswordBytes+1)
	for i := range long {
		long[i] = 'x'
	}

	err := hasher.ValidatePasswordStrength(string(long))
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestBcryptHasher_Helpers(t *testing.T) {
	hasher := &bcryptHasher{}

	assert.True(t, hasher.hasUppercase("Password"))
	assert.False(t, hasher.hasUppercase("password"))
	assert.True(t, hasher.hasLowercase("Password"))
	assert.False(t, hasher.hasLowercase("PASSWORD"))
	assert.True(t, hasher.hasNumbers("Password123"))
	assert.False(t, hasher.hasNumbers("Password"))
	assert.True(t, hasher.hasSpecialChars("Password!"))
	assert.False(t, hasher.hasSpecialChars("Password"))

	forbiddenWords := []string{"password", "admin"}
	assert.True(t, hasher.containsForbiddenWords("MyPassword123", forbiddenWords))
	assert.True(t, hasher.containsForbiddenWords("AdminUser", forbiddenWords))
	assert.False(t, hasher.containsForbiddenWords("SecurePass123", forbiddenWords))
}
