//go:build !amd64 && !arm64 && !386

package hrtime

import "runtime"

// YieldThread yields the calling goroutine's time slice. Platforms without a
// dedicated spin-wait hint fall back to the scheduler.
func YieldThread() {
	runtime.Gosched()
}
