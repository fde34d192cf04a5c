//go:build hrtime_fallback || (!arm64 && !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows)

package hrtime

import "time"

const activeSource = SourceFallback

var platformCaps = capabilities{}

// epoch anchors the fallback clock at process start.
var epoch = time.Now()

// nowNanos measures elapsed time from the process epoch. time.Since reads
// the Go runtime's steady clock, so instants from this source still never
// decrease.
func nowNanos() int64 {
	return int64(time.Since(epoch))
}
