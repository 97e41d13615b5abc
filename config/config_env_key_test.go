package config

import (
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"accessTokenTTL":   "15m",
			"revokeAllOnReuse": true,
		},
		"mail": map[string]any{
			"smtp": map[string]any{"host": ""},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTTL"},
		{envKey: "AUTH_REVOKEALLONREUSE", want: "auth.revokeAllOnReuse"},
		{envKey: "MAIL_SMTP_HOST", want: "mail.smtp.host"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL {
		t.Fatalf("AccessTokenTTL = %s, want %s", cfg.Auth.AccessTokenTTL, defaultAccessTokenTTL)
	}
	if cfg.Auth.RefreshTokenTTL != defaultRefreshTokenTTL {
		t.Fatalf("RefreshTokenTTL = %s, want %s", cfg.Auth.RefreshTokenTTL, defaultRefreshTokenTTL)
	}
	if cfg.Auth.ResetTokenTTL != defaultResetTokenTTL {
		t.Fatalf("ResetTokenTTL = %s, want %s", cfg.Auth.ResetTokenTTL, defaultResetTokenTTL)
	}
	if cfg.Lockout.Threshold != defaultLockoutThreshold {
		t.Fatalf("Lockout.Threshold = %d, want %d", cfg.Lockout.Threshold, defaultLockoutThreshold)
	}
	if cfg.Plans.DefaultTier != defaultPlanTier {
		t.Fatalf("Plans.DefaultTier = %q, want %q", cfg.Plans.DefaultTier, defaultPlanTier)
	}
	if cfg.Mail.Transport != defaultMailTransport {
		t.Fatalf("Mail.Transport = %q, want %q", cfg.Mail.Transport, defaultMailTransport)
	}
	if cfg.PubSub == nil {
		t.Fatal("PubSub section left nil")
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth: &AuthConfig{AccessTokenTTL: 5 * time.Minute, Issuer: "custom"},
	}

	applyDefaults(cfg)

	if cfg.Auth.AccessTokenTTL != 5*time.Minute {
		t.Fatalf("AccessTokenTTL overwritten: %s", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Auth.Issuer != "custom" {
		t.Fatalf("Issuer overwritten: %q", cfg.Auth.Issuer)
	}
}

func TestValidate_RejectsRefreshShorterThanAccess(t *testing.T) {
	cfg := &Config{
		Postgres: &postgres.DBConn{},
		Auth:     &AuthConfig{AccessTokenTTL: time.Hour, RefreshTokenTTL: time.Minute},
	}

	if err := cfg.validate(); err == nil {
		t.Fatal("expected validation error")
	}
}
