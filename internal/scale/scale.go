// Package scale converts raw counter ticks at a given frequency into
// nanosecond durations without overflowing int64.
package scale

// NanosPerSecond is the period denominator used throughout the module: the
// number of nanoseconds in one second.
const NanosPerSecond = 1_000_000_000

// Scale converts counter ticks at freq ticks-per-second into periodDen-ths
// of a second. The naive (counter*periodDen)/freq overflows once counter
// grows large, so the computation is split into whole seconds and a
// sub-second remainder; this is exact and keeps every intermediate product
// bounded by freq*periodDen. It assumes freq*periodDen fits in int64, which
// holds for nanosecond scaling at all realistic counter frequencies (up to
// ~1e10 Hz).
//
// Precondition: freq > 0. Supported platforms never report a zero frequency,
// so no guard is performed here.
func Scale(freq, counter, periodDen int64) int64 {
	whole := (counter / freq) * periodDen
	part := (counter % freq) * periodDen / freq
	return whole + part
}

// Scale10MHz is Scale specialized for a 10 MHz counter, the common
// performance-counter frequency on 64-bit x86 Windows. With the frequency a
// compile-time constant the divisions reduce to shifts and multiplies.
func Scale10MHz(counter, periodDen int64) int64 {
	const freq = 10_000_000
	return Scale(freq, counter, periodDen)
}

// Scale24MHz is Scale specialized for a 24 MHz counter, the common CNTFRQ
// value on ARM64 (Windows-on-ARM devices and Apple Silicon).
func Scale24MHz(counter, periodDen int64) int64 {
	const freq = 24_000_000
	return Scale(freq, counter, periodDen)
}

// Dispatch converts counter ticks at freq into nanoseconds, routing the two
// frequencies common in practice through their specialized paths.
func Dispatch(freq, counter int64) int64 {
	switch freq {
	case 10_000_000:
		return Scale10MHz(counter, NanosPerSecond)
	case 24_000_000:
		return Scale24MHz(counter, NanosPerSecond)
	}
	return Scale(freq, counter, NanosPerSecond)
}
