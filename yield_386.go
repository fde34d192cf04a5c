//go:build 386

package hrtime

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// hasSSE2 gates the spin hint: PAUSE decodes as REP NOP everywhere, but its
// backoff behavior is only defined on SSE2-capable processors.
var hasSSE2 = cpu.X86.HasSSE2

// YieldThread hints to the CPU that the caller is in a spin-wait loop,
// issuing PAUSE on SSE2-capable processors and yielding the time slice
// otherwise.
func YieldThread() {
	if hasSSE2 {
		pause()
		return
	}
	runtime.Gosched()
}

// pause issues a single PAUSE instruction. Implemented in yield_386.s.
//
//go:noescape
func pause()
