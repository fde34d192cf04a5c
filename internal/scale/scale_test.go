package scale

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// exactScale computes floor(counter * periodDen / freq) in arbitrary
// precision, the value Scale must match bit-for-bit.
func exactScale(freq, counter, periodDen int64) int64 {
	n := new(big.Int).Mul(big.NewInt(counter), big.NewInt(periodDen))
	n.Quo(n, big.NewInt(freq))
	return n.Int64()
}

var testFrequencies = []int64{
	1,
	3,
	1000,
	32_768,         // RTC-style
	3_579_545,      // ACPI PM timer
	10_000_000,     // x86 Windows QPC
	24_000_000,     // ARM64 CNTFRQ
	1_000_000_000,  // 1 GHz counter
	4_300_000_000,  // GHz-scale TSC
	10_000_000_000, // upper supported bound
}

var testCounters = []int64{
	0,
	1,
	999,
	123_456_789,
	1 << 32,
	(1 << 32) + 12345,
	1 << 48,
	(1 << 62) - 1, // largest supported counter
}

func TestScaleMatchesExactArithmetic(t *testing.T) {
	for _, freq := range testFrequencies {
		for _, c := range testCounters {
			counters := []int64{c}
			// Straddle the whole-second boundary for this frequency.
			if c >= freq {
				counters = append(counters, c-freq+1, c-1, c+1)
			}
			for _, counter := range counters {
				want := exactScale(freq, counter, NanosPerSecond)
				got := Scale(freq, counter, NanosPerSecond)
				require.Equalf(t, want, got, "freq=%d counter=%d", freq, counter)
			}
		}
	}
}

func TestScaleKnownScenario(t *testing.T) {
	// 123456789 ticks at 10 MHz: 12 whole seconds plus 3456789 ticks of
	// remainder, 345678900 ns.
	got := Scale(10_000_000, 123_456_789, NanosPerSecond)
	require.Equal(t, int64(12_345_678_900), got)
}

func TestScaleNoOverflowNearBounds(t *testing.T) {
	// The naive (counter*periodDen)/freq overflows for every case here; the
	// split computation must not.
	for _, freq := range []int64{10_000_000, 24_000_000, 10_000_000_000} {
		counter := int64((1 << 62) - 1)
		require.Greater(t, counter, int64(math.MaxInt64/NanosPerSecond), "case must overflow naively")
		want := exactScale(freq, counter, NanosPerSecond)
		got := Scale(freq, counter, NanosPerSecond)
		require.Equalf(t, want, got, "freq=%d", freq)
		require.Positive(t, got)
	}
}

func TestSpecializationsMatchGeneric(t *testing.T) {
	counters := append([]int64{}, testCounters...)
	counters = append(counters,
		9_999_999, 10_000_000, 10_000_001,
		23_999_999, 24_000_000, 24_000_001,
	)

	for _, counter := range counters {
		require.Equalf(t,
			Scale(10_000_000, counter, NanosPerSecond),
			Scale10MHz(counter, NanosPerSecond),
			"10MHz counter=%d", counter)
		require.Equalf(t,
			Scale(24_000_000, counter, NanosPerSecond),
			Scale24MHz(counter, NanosPerSecond),
			"24MHz counter=%d", counter)
	}
}

func TestDispatchMatchesGeneric(t *testing.T) {
	// Both the specialized and the default switch arms must agree with the
	// generic computation.
	freqs := []int64{10_000_000, 24_000_000, 1, 3_579_545, 1_000_000_000}
	for _, freq := range freqs {
		for _, counter := range testCounters {
			require.Equalf(t,
				Scale(freq, counter, NanosPerSecond),
				Dispatch(freq, counter),
				"freq=%d counter=%d", freq, counter)
		}
	}
}

func BenchmarkScaleGeneric(b *testing.B) {
	var sink int64
	for i := 0; i < b.N; i++ {
		sink = Scale(24_000_000, int64(i)+(1<<40), NanosPerSecond)
	}
	_ = sink
}

func BenchmarkScale24MHz(b *testing.B) {
	var sink int64
	for i := 0; i < b.N; i++ {
		sink = Scale24MHz(int64(i)+(1<<40), NanosPerSecond)
	}
	_ = sink
}

func BenchmarkDispatch(b *testing.B) {
	var sink int64
	for i := 0; i < b.N; i++ {
		sink = Dispatch(24_000_000, int64(i)+(1<<40))
	}
	_ = sink
}
