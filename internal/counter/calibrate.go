package counter

import "time"

// CyclesPerSecond estimates the rate of Cycles. On arm64 the architectural
// frequency register is returned directly and no measurement runs; elsewhere
// the counter is measured against the OS clock over a short busy-wait
// window. The estimate is for reporting only and is never consulted on the
// timing hot path. Returns 0 when no rate can be determined.
func CyclesPerSecond() int64 {
	if f := Frequency(); f != 0 {
		return f
	}
	return calibrate()
}

// calibrate measures Cycles against the wall clock over a 10ms busy-wait.
func calibrate() int64 {
	const window = 10 * time.Millisecond

	start := time.Now()
	startCycles := Cycles()

	for time.Since(start) < window {
		// Spin
	}

	cycles := Cycles() - startCycles
	elapsed := time.Since(start)

	if cycles <= 0 || elapsed <= 0 {
		return 0
	}
	return int64(float64(cycles) / elapsed.Seconds())
}
