package hrtime

// Source identifies the clock variant backing the process clock. Exactly one
// variant is active per build; the choice is fixed before any timing call
// executes and never changes at runtime.
type Source uint8

const (
	// SourceCPUClock reads a fixed-frequency CPU cycle counter
	// (CNTVCT_EL0 on 64-bit ARM).
	SourceCPUClock Source = iota
	// SourceMonotonicRaw reads CLOCK_MONOTONIC_RAW, which is immune to NTP
	// slew and other system time adjustments.
	SourceMonotonicRaw
	// SourceMonotonic reads CLOCK_MONOTONIC.
	SourceMonotonic
	// SourcePerformanceCounter reads the Windows performance counter.
	SourcePerformanceCounter
	// SourceFallback measures elapsed time from a process-start epoch with
	// the host's best-effort steady clock.
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceCPUClock:
		return "cpu-clock"
	case SourceMonotonicRaw:
		return "monotonic-raw"
	case SourceMonotonic:
		return "monotonic"
	case SourcePerformanceCounter:
		return "performance-counter"
	case SourceFallback:
		return "fallback"
	}
	return "unknown"
}

// capabilities describes the timing facilities a target exposes, as known at
// build configuration time.
type capabilities struct {
	forceFallback         bool
	fixedFreqCycleCounter bool
	rawMonotonicClock     bool
	monotonicClock        bool
	performanceCounter    bool
}

// selectSource resolves a capability set to a clock source. Hardware
// counters with a known fixed frequency win over OS-mediated clocks, and
// raw clocks win over adjustable ones; the fallback is the universal safety
// net, so every capability set resolves. The build-tag partition across the
// clock_*.go files implements exactly this order, and each build asserts the
// agreement in tests.
func selectSource(c capabilities) Source {
	switch {
	case c.forceFallback:
		return SourceFallback
	case c.fixedFreqCycleCounter:
		return SourceCPUClock
	case c.rawMonotonicClock:
		return SourceMonotonicRaw
	case c.monotonicClock:
		return SourceMonotonic
	case c.performanceCounter:
		return SourcePerformanceCounter
	}
	return SourceFallback
}
