package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"grahafitness_backend/internals/helpers/logx"
)

// BlacklistCleaner: repository.AuthRepository memenuhi ini.
type BlacklistCleaner interface {
	CleanupExpiredBlacklist(ctx context.Context, before time.Time, limit int) (int64, error)
}

const cleanupBatch = 100

// RegisterBlacklistCleanup: jalan tiap hari jam 03:00, buang token yang
// expired lebih dari ttlDays hari lalu.
func RegisterBlacklistCleanup(c *cron.Cron, repo BlacklistCleaner, ttlDays int) (cron.EntryID, error) {
	if ttlDays <= 0 {
		ttlDays = 7
	}
	return c.AddFunc("0 3 * * *", func() {
		RunBlacklistCleanup(repo, ttlDays, time.Now())
	})
}

func RunBlacklistCleanup(repo BlacklistCleaner, ttlDays int, now time.Time) int64 {
	log := logx.Module("auth")
	log.Info("[CLEANUP] Menjalankan pembersihan token_blacklist...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	deleteBefore := now.Add(-time.Duration(ttlDays) * 24 * time.Hour)
	var total int64
	for {
		n, err := repo.CleanupExpiredBlacklist(ctx, deleteBefore, cleanupBatch)
		if err != nil {
			log.WithError(err).Error("[CLEANUP ERROR] Gagal hapus token")
			return total
		}
		total += n
		if n < cleanupBatch {
			break
		}
	}

	if total > 0 {
		log.WithField("count", total).Info("[CLEANUP] token kadaluarsa dihapus")
	} else {
		log.Info("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
	}
	return total
}
