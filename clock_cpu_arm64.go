//go:build arm64 && !hrtime_fallback

package hrtime

import (
	"github.com/cwbudde/hrtime/internal/counter"
	"github.com/cwbudde/hrtime/internal/scale"
)

const activeSource = SourceCPUClock

var platformCaps = capabilities{
	fixedFreqCycleCounter: true,
	monotonicClock:        true,
}

// nowNanos reads the virtual counter and scales it by the frequency
// register. 24 MHz covers Apple Silicon and Windows-on-ARM hardware and
// takes the specialized scaling path.
func nowNanos() int64 {
	freq := counter.Frequency()
	ticks := counter.Read()
	return scale.Dispatch(freq, ticks)
}
