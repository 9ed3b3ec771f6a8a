// file: internals/helpers/dbtime/clock.go
package dbtime

import (
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	// 12 jam, contoh "07:05 PM"
	TimeOfDayLayout = "03:04 PM"
)

// Clock memberi "sekarang" & "hari ini" di timezone gym.
// NowFn bisa diganti di test.
type Clock struct {
	Loc   *time.Location
	NowFn func() time.Time
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{Loc: loc, NowFn: time.Now}
}

// Fixed → clock yang selalu mengembalikan t (untuk test & job manual).
func Fixed(t time.Time) Clock {
	return Clock{Loc: t.Location(), NowFn: func() time.Time { return t }}
}

func (c Clock) Now() time.Time {
	now := time.Now
	if c.NowFn != nil {
		now = c.NowFn
	}
	loc := c.Loc
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc)
}

// Today → "YYYY-MM-DD"
func (c Clock) Today() string { return c.Now().Format(DateLayout) }

// Month → "YYYY-MM"
func (c Clock) Month() string { return c.Now().Format(MonthLayout) }

// AddDays → tanggal ISO n hari dari hari ini.
func (c Clock) AddDays(n int) string {
	return c.Now().AddDate(0, 0, n).Format(DateLayout)
}

// IsDate cek format "YYYY-MM-DD" yang valid.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsMonth cek format "YYYY-MM" yang valid.
func IsMonth(s string) bool {
	_, err := time.Parse(MonthLayout, s)
	return err == nil
}
