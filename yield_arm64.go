//go:build arm64

package hrtime

// YieldThread hints to the CPU that the caller is in a spin-wait loop. On
// arm64 it issues an ISB, which stalls the pipeline long enough to release
// shared execution resources without entering the scheduler.
// Implemented in yield_arm64.s.
//
//go:noescape
func YieldThread()
