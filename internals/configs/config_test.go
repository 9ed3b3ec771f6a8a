package configs

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDatabaseURL(t *testing.T) {
	cases := []struct{ in, want string }{
		{"postgresql://u:p@h:6543/db?pgbouncer=true", "postgres://u:p@h:6543/db"},
		{"postgres://u:p@h/db?sslmode=require&pgbouncer=true&prepared_statements=false", "postgres://u:p@h/db?sslmode=require"},
		{"postgres://u:p@h/db?pgbouncer=true&sslmode=disable", "postgres://u:p@h/db?sslmode=disable"},
		{"  postgres://u:p@h/db  ", "postgres://u:p@h/db"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeDatabaseURL(tc.in), tc.in)
	}
}

func TestDecode_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "PORT", "TOKEN_EXPIRE_HOURS", "GYM_TIMEZONE", "ITEM_LINKED_TRANSACTIONS", "MEMBERSHIP_SWEEP_CRON", "TRUSTED_PROXIES"} {
		t.Setenv(k, "")
	}

	cfg, err := Decode()
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.TokenExpireHours)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())
	assert.Equal(t, 7, cfg.TokenBlacklistTTLDays)
	assert.False(t, cfg.ItemLinkedTransactions)
	assert.Empty(t, cfg.MembershipSweepCron)
	assert.Empty(t, cfg.TrustedProxyList())
}

func TestDecode_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "Production")
	t.Setenv("TOKEN_EXPIRE_HOURS", "12")
	t.Setenv("GYM_TIMEZONE", "Asia/Jakarta")
	t.Setenv("ITEM_LINKED_TRANSACTIONS", "true")
	t.Setenv("MEMBERSHIP_SWEEP_CRON", "*/30 * * * *")

	cfg, err := Decode()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL())
	assert.True(t, cfg.ItemLinkedTransactions)
	assert.Equal(t, "*/30 * * * *", cfg.MembershipSweepCron)
	assert.Equal(t, "Asia/Jakarta", cfg.Location().String())
}

func TestLocation_FallsBackToUTC(t *testing.T) {
	cfg := &Config{GymTimezone: "Mars/Olympus"}
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBUser: "gym", DBPassword: "pw", DBHost: "db", DBPort: "5432", DBName: "gymflow", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://gym:pw@db:5432/gymflow?sslmode=disable&application_name=grahafitness", cfg.DSN())

	cfg.DatabaseURL = "postgresql://x:y@z/w?pgbouncer=true"
	assert.Equal(t, "postgres://x:y@z/w", cfg.DSN())
}

func TestTrustedProxyList(t *testing.T) {
	cfg := &Config{TrustedProxies: " 10.0.0.0/8, ,127.0.0.1 "}
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.TrustedProxyList())
}
