// Package hrtime provides nanosecond-resolution monotonic timestamps with
// minimal per-call overhead, intended as the timing foundation of
// profiling and instrumentation code.
//
// Exactly one clock source backs the package per build, chosen at compile
// time from the target's capabilities: a fixed-frequency CPU cycle counter
// where the architecture exposes one, a raw (adjustment-free) or standard
// OS monotonic clock, the Windows performance counter, or a generic steady
// fallback. Callers never see which source is active; Active reports it for
// diagnostics. Building with the hrtime_fallback tag forces the generic
// fallback on any target.
//
// Instants carry no wall-clock meaning. They count nanoseconds from an
// arbitrary epoch and are only comparable against other Instants from the
// same process.
package hrtime

import "time"

// Instant is an opaque monotonic point in time, counted in nanoseconds from
// an arbitrary epoch fixed by the active clock source (process start or
// system boot).
type Instant int64

// Sub returns the duration elapsed from earlier to t.
func (t Instant) Sub(earlier Instant) time.Duration {
	return time.Duration(t - earlier)
}

// Before reports whether t precedes u.
func (t Instant) Before(u Instant) bool { return t < u }

// After reports whether t follows u.
func (t Instant) After(u Instant) bool { return t > u }

// Clock is the process-wide high-resolution clock. The zero value is ready
// to use; every Clock reads the same build-time-selected source, so there is
// no state to construct or share.
type Clock struct{}

// Now returns the current instant. It never blocks, never fails, performs no
// allocation, and is safe to call concurrently from any number of
// goroutines.
func (Clock) Now() Instant {
	return Instant(nowNanos())
}

// Monotonic reports that the clock is steady: instants read in program order
// on one thread never decrease.
func (Clock) Monotonic() bool { return true }

// Source returns the clock source variant selected for this build.
func (Clock) Source() Source { return activeSource }

// Now returns the current instant from the process-wide clock.
func Now() Instant {
	return Instant(nowNanos())
}

// Since returns the duration elapsed since t.
func Since(t Instant) time.Duration {
	return Now().Sub(t)
}

// Active returns the clock source variant selected for this build.
func Active() Source { return activeSource }
