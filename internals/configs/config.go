package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"

	"grahafitness_backend/internals/helpers/logx"
)

// Config dibaca dari ENV (setelah .env dimuat).
type Config struct {
	AppEnv string `env:"APP_ENV,default=development"`
	Port   string `env:"PORT,default=8080"`

	DatabaseURL string `env:"DATABASE_URL"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBHost      string `env:"DB_HOST,default=localhost"`
	DBPort      string `env:"DB_PORT,default=5432"`
	DBName      string `env:"DB_NAME,default=gymflow"`
	DBSSLMode   string `env:"DB_SSLMODE,default=require"`

	JWTSecret        string `env:"JWT_SECRET"`
	TokenExpireHours int    `env:"TOKEN_EXPIRE_HOURS,default=24"`

	GymTimezone string `env:"GYM_TIMEZONE,default=Asia/Jakarta"`

	// Transaksi boleh menunjuk stock item (varian "toko" dari aplikasi).
	ItemLinkedTransactions bool `env:"ITEM_LINKED_TRANSACTIONS,default=false"`

	// Kosong = sweep member kadaluarsa tidak dijadwalkan.
	MembershipSweepCron   string `env:"MEMBERSHIP_SWEEP_CRON"`
	TokenBlacklistTTLDays int    `env:"TOKEN_BLACKLIST_TTL_DAYS,default=7"`

	// CIDR/IP proxy yang boleh mengisi X-Forwarded-For, dipisah koma.
	// Kosong = IP klien selalu diambil dari koneksi.
	TrustedProxies string `env:"TRUSTED_PROXIES"`

	CORSOrigins         string `env:"CORS_ORIGINS,default=*"`
	SeedDefaultPassword string `env:"SEED_DEFAULT_PASSWORD,default=admin123"`
	LogLevel            string `env:"LOG_LEVEL,default=info"`
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() *Config {
	log := logx.Module("config")

	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Warn("⚠️ .env tidak ditemukan, menggunakan ENV dari sistem")
		} else {
			log.Info("✅ .env file berhasil dimuat")
		}
	} else {
		log.Info("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	cfg, err := Decode()
	if err != nil {
		log.WithError(err).Fatal("❌ Gagal membaca konfigurasi")
	}

	if cfg.JWTSecret == "" {
		log.Error("❌ JWT_SECRET belum diset!")
	} else {
		log.Info("✅ JWT_SECRET berhasil dimuat.")
	}

	return cfg
}

// Decode membaca ENV ke Config tanpa menyentuh .env.
func Decode() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, err
	}
	if cfg.TokenExpireHours <= 0 {
		cfg.TokenExpireHours = 24
	}
	if cfg.TokenBlacklistTTLDays <= 0 {
		cfg.TokenBlacklistTTLDays = 7
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// TrustedProxyList → daftar TRUSTED_PROXIES yang sudah dirapikan.
func (c *Config) TrustedProxyList() []string {
	var out []string
	for _, p := range strings.Split(c.TrustedProxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenExpireHours) * time.Hour
}

// Location → timezone gym; fallback UTC kalau nama zona tidak dikenal.
func (c *Config) Location() *time.Location {
	if loc, err := time.LoadLocation(strings.TrimSpace(c.GymTimezone)); err == nil {
		return loc
	}
	return time.UTC
}

// DSN memakai DATABASE_URL kalau ada, kalau tidak dirakit dari DB_*.
func (c *Config) DSN() string {
	if strings.TrimSpace(c.DatabaseURL) != "" {
		return NormalizeDatabaseURL(c.DatabaseURL)
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=grahafitness",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// NormalizeDatabaseURL membuang parameter khusus PgBouncer yang tidak
// dikenali driver dan merapikan separator query.
func NormalizeDatabaseURL(raw string) string {
	u := strings.TrimSpace(raw)
	if strings.HasPrefix(u, "postgresql://") {
		u = "postgres://" + strings.TrimPrefix(u, "postgresql://")
	}
	for _, p := range []string{"pgbouncer=true", "prepared_statements=false", "prepared_statements=true"} {
		u = strings.ReplaceAll(u, p, "")
	}
	for strings.Contains(u, "&&") {
		u = strings.ReplaceAll(u, "&&", "&")
	}
	u = strings.ReplaceAll(u, "?&", "?")
	u = strings.TrimRight(u, "?&")
	return u
}
