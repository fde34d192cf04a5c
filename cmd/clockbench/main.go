// clockbench reports which clock source backs hrtime on this build and
// measures its per-call overhead against the standard library clock.
package main

import (
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/hrtime"
	"github.com/cwbudde/hrtime/internal/counter"
)

func main() {
	var (
		iters   = flag.Int("iters", 1_000_000, "timed calls per measurement")
		warmup  = flag.Int("warmup", 10_000, "warmup calls before measuring")
		samples = flag.Int("samples", 1000, "back-to-back reads for the resolution probe")
	)
	flag.Parse()

	fmt.Printf("clock source:  %s\n", hrtime.Active())
	fmt.Printf("counter rate:  %s\n", formatHz(counter.CyclesPerSecond()))
	fmt.Println()

	fmt.Printf("%-20s  %10s\n", "call", "ns/op")
	fmt.Printf("%-20s  %10.1f\n", "hrtime.Now", measure(*warmup, *iters, func() { hrtime.Now() }))
	fmt.Printf("%-20s  %10.1f\n", "time.Now", measure(*warmup, *iters, func() { time.Now() }))
	fmt.Printf("%-20s  %10.1f\n", "hrtime.YieldThread", measure(*warmup, *iters, hrtime.YieldThread))
	fmt.Println()

	uniqueRatio, minStep := resolution(*samples)
	fmt.Printf("resolution probe: %.1f%% unique instants, min step %v\n", uniqueRatio*100, minStep)
}

func measure(warmup, iters int, fn func()) float64 {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := hrtime.Now()
	for i := 0; i < iters; i++ {
		fn()
	}
	return float64(hrtime.Since(start)) / float64(iters)
}

// resolution reads the clock back-to-back and reports how distinguishable
// the instants are: the fraction of unique values and the smallest positive
// step observed.
func resolution(samples int) (uniqueRatio float64, minStep time.Duration) {
	values := make([]hrtime.Instant, samples)
	for i := range values {
		values[i] = hrtime.Now()
	}

	unique := make(map[hrtime.Instant]struct{}, samples)
	minStep = time.Duration(math.MaxInt64)

	for i, v := range values {
		unique[v] = struct{}{}
		if i > 0 {
			if d := v.Sub(values[i-1]); d > 0 && d < minStep {
				minStep = d
			}
		}
	}
	if len(unique) <= 1 {
		minStep = 0
	}
	return float64(len(unique)) / float64(samples), minStep
}

func formatHz(hz int64) string {
	switch {
	case hz == 0:
		return "unknown (no calibration available)"
	case hz >= 1_000_000_000:
		return fmt.Sprintf("%.2f GHz", float64(hz)/1e9)
	case hz >= 1_000_000:
		return fmt.Sprintf("%.2f MHz", float64(hz)/1e6)
	}
	return fmt.Sprintf("%d Hz", hz)
}
