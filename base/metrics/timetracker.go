package metrics

import (
	"time"

	"github.com/zuno-xyz/goauction/base/log"
)

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func newTimeTracker(key string, tags []string) *timeTracker {
	return &timeTracker{
		start: time.Now(),
		key:   key,
		tags:  tags,
	}
}

func (t *timeTracker) End() {
	d := time.Since(t.start)
	msec := d / time.Millisecond
	nsec := d % time.Millisecond
	dur := float64(msec) + float64(nsec)*1e-6

	if err := ddClient.TimeInMilliseconds(t.key, dur, t.tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key, "val": dur}).Error("BumpTime failed")
	}
}
