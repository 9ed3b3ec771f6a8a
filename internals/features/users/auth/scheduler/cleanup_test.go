package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type batchCleaner struct {
	batches []int64
	calls   int
	before  time.Time
	err     error
}

func (b *batchCleaner) CleanupExpiredBlacklist(_ context.Context, before time.Time, limit int) (int64, error) {
	b.before = before
	if b.err != nil {
		return 0, b.err
	}
	if b.calls >= len(b.batches) {
		return 0, nil
	}
	n := b.batches[b.calls]
	b.calls++
	return n, nil
}

func TestRunBlacklistCleanup_LoopsUntilShortBatch(t *testing.T) {
	now := time.Date(2024, 6, 10, 3, 0, 0, 0, time.UTC)
	repo := &batchCleaner{batches: []int64{100, 100, 42}}

	total := RunBlacklistCleanup(repo, 7, now)

	assert.Equal(t, int64(242), total)
	assert.Equal(t, 3, repo.calls)
	assert.Equal(t, now.AddDate(0, 0, -7), repo.before)
}

func TestRunBlacklistCleanup_StopsOnError(t *testing.T) {
	repo := &batchCleaner{err: errors.New("db down")}
	assert.Zero(t, RunBlacklistCleanup(repo, 7, time.Now()))
}

func TestRegisterBlacklistCleanup(t *testing.T) {
	c := cron.New()
	id, err := RegisterBlacklistCleanup(c, &batchCleaner{}, 0)
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Len(t, c.Entries(), 1)
}
