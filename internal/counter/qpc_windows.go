//go:build windows

package counter

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// qpcFreq is probed once at startup. QueryPerformanceFrequency cannot fail
// on any Windows version this module targets; a failing probe means the
// process is misconfigured beyond repair, so startup aborts.
var qpcFreq = func() int64 {
	var freq int64
	if err := windows.QueryPerformanceFrequency(&freq); err != nil || freq <= 0 {
		panic(fmt.Sprintf("hrtime: QueryPerformanceFrequency failed (freq=%d): %v", freq, err))
	}
	return freq
}()

// QPC returns the current performance counter value.
func QPC() int64 {
	var ctr int64
	windows.QueryPerformanceCounter(&ctr)
	return ctr
}

// QPCFrequency returns the performance counter frequency in Hz, probed once
// at process start.
func QPCFrequency() int64 {
	return qpcFreq
}
