// Package counter provides raw access to the hardware and OS counters that
// back the high-resolution clock. Every reader is allocation-free and
// performs at most one hardware or OS read per call.
package counter

// Cycles returns the current value of the platform cycle counter: RDTSC on
// amd64, the virtual counter (CNTVCT_EL0) on arm64, and a time.Now fallback
// elsewhere. The value is only meaningful relative to other Cycles readings
// from the same process, interpreted at the rate reported by Frequency or
// CyclesPerSecond.
func Cycles() int64 {
	return readCycles()
}
