//go:build amd64

package counter

// readCycles returns the CPU timestamp counter via RDTSC.
// Implemented in counter_amd64.s.
//
//go:noescape
func readCycles() int64

// Frequency returns 0 on amd64: the TSC rate is not architecturally
// discoverable, so this counter never backs the process clock. Use
// CyclesPerSecond for a calibrated estimate.
func Frequency() int64 {
	return 0
}
