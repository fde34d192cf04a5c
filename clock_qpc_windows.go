//go:build windows && !arm64 && !hrtime_fallback

package hrtime

import (
	"github.com/cwbudde/hrtime/internal/counter"
	"github.com/cwbudde/hrtime/internal/scale"
)

const activeSource = SourcePerformanceCounter

var platformCaps = capabilities{
	performanceCounter: true,
}

// nowNanos scales the performance counter by its frequency. 10 MHz is the
// common frequency on 64-bit x86 Windows and takes the specialized scaling
// path.
func nowNanos() int64 {
	freq := counter.QPCFrequency()
	ticks := counter.QPC()
	return scale.Dispatch(freq, ticks)
}
