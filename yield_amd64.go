//go:build amd64

package hrtime

// YieldThread hints to the CPU that the caller is in a spin-wait loop. On
// amd64 it issues a single PAUSE instruction and never enters the
// scheduler, so it is safe to call at arbitrarily high frequency.
// Implemented in yield_amd64.s.
//
//go:noescape
func YieldThread()
