// file: internals/helpers/logx/logx.go
package logx

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Log adalah logger bersama untuk seluruh aplikasi.
var Log = logrus.New()

// Setup mengatur level & format. Production → JSON, selain itu text.
func Setup(level string, production bool) {
	Log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if production {
		Log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05Z07:00"})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"})
	}
}

// Module → entry dengan field "module" (auth, members, stock, ...).
func Module(name string) *logrus.Entry {
	return Log.WithField("module", name)
}

// FromCtx → entry dengan request id (diisi middleware request id).
func FromCtx(c *fiber.Ctx) *logrus.Entry {
	entry := logrus.NewEntry(Log)
	if c == nil {
		return entry
	}
	if id, ok := c.Locals("reqid").(string); ok && id != "" {
		entry = entry.WithField("reqid", id)
	}
	if uid, ok := c.Locals("user_id").(string); ok && uid != "" {
		entry = entry.WithField("user_id", uid)
	}
	return entry
}
