package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"grahafitness_backend/internals/helpers/logx"
)

// Sweeper: cukup method SweepExpired dari MemberService.
type Sweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// RegisterMembershipSweep menjadwalkan rekonsiliasi status expired.
// spec kosong → tidak dijadwalkan (rekonsiliasi tetap terjadi saat listing).
func RegisterMembershipSweep(c *cron.Cron, spec string, s Sweeper) (cron.EntryID, error) {
	if spec == "" {
		logx.Module("members").Info("[SWEEP] MEMBERSHIP_SWEEP_CRON kosong, sweep dimatikan")
		return 0, nil
	}
	return c.AddFunc(spec, func() { RunSweep(s) })
}

// RunSweep dipisah supaya bisa dipanggil langsung (mis. saat startup / test).
func RunSweep(s Sweeper) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log := logx.Module("members")
	n, err := s.SweepExpired(ctx)
	if err != nil {
		log.WithError(err).Error("[SWEEP] gagal menandai membership expired")
		return
	}
	if n > 0 {
		log.WithField("count", n).Info("[SWEEP] membership expired ditandai")
	}
}
