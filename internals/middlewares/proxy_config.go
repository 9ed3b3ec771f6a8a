package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// WithTrustedProxies: X-Forwarded-For hanya dibaca kalau koneksi datang
// dari proxy yang terdaftar. Daftar kosong = c.IP() selalu IP koneksi.
func WithTrustedProxies(cfg fiber.Config, trusted []string) fiber.Config {
	cfg.EnableTrustedProxyCheck = true
	cfg.TrustedProxies = trusted
	if len(trusted) > 0 {
		cfg.ProxyHeader = fiber.HeaderXForwardedFor
	} else {
		cfg.ProxyHeader = ""
	}
	return cfg
}
