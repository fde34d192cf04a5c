//go:build (freebsd || netbsd || openbsd) && !arm64 && !hrtime_fallback

package hrtime

import "golang.org/x/sys/unix"

const activeSource = SourceMonotonic

var platformCaps = capabilities{
	monotonicClock: true,
}

// nowNanos reads CLOCK_MONOTONIC. These targets expose no raw variant, so
// the clock is subject to NTP rate adjustment but never steps backwards.
func nowNanos() int64 {
	var ts unix.Timespec
	unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts)
	return ts.Nano()
}
