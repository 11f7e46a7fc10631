package core

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"
)

// TimestampLayout is the fixed header timestamp format.
const TimestampLayout = "2006-01-02 15:04:05"

var (
	coarseClockOnce sync.Once
	coarseStamp     unsafe.Pointer // *string
)

// StartCoarseClock starts the background goroutine that caches the
// formatted timestamp every 250ms. The header timestamp has one-second
// granularity, so formatting time.Now() on every log call is wasted
// work on hot paths. Safe to call multiple times; the goroutine is
// started exactly once and runs for the lifetime of the process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		s := time.Now().Format(TimestampLayout)
		atomic.StorePointer(&coarseStamp, unsafe.Pointer(&s))
		go func() {
			ticker := time.NewTicker(250 * time.Millisecond)
			for range ticker.C {
				s := time.Now().Format(TimestampLayout)
				atomic.StorePointer(&coarseStamp, unsafe.Pointer(&s))
			}
		}()
	})
}

// Timestamp returns the current formatted timestamp. It uses the
// cached value when the coarse clock is running and formats on the
// spot otherwise.
func Timestamp() string {
	p := atomic.LoadPointer(&coarseStamp)
	if p == nil {
		return time.Now().Format(TimestampLayout)
	}
	return *(*string)(p)
}
