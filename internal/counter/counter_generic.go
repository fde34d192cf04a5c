//go:build !amd64 && !arm64

package counter

import "time"

// readCycles falls back to the OS clock on platforms without a dedicated
// cycle-counter read. The returned value counts nanoseconds, so callers see
// an effective frequency of one tick per nanosecond.
func readCycles() int64 {
	return time.Now().UnixNano()
}

// Frequency returns 0 on generic platforms; readCycles already reports
// nanoseconds.
func Frequency() int64 {
	return 0
}
