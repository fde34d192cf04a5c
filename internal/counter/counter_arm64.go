//go:build arm64

package counter

// Read returns the current value of the virtual counter (CNTVCT_EL0). The
// read is ISB-serialized so it cannot be hoisted ahead of earlier
// instructions. Implemented in counter_arm64.s.
//
//go:noescape
func Read() int64

// Frequency returns the counter frequency in Hz (CNTFRQ_EL0). Firmware
// programs this register at boot; it never changes afterwards.
// Implemented in counter_arm64.s.
//
//go:noescape
func Frequency() int64

func readCycles() int64 {
	return Read()
}
