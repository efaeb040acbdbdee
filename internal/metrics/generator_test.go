package metrics

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/rileyhilliard/netmon/internal/errors"
	metricstest "github.com/rileyhilliard/netmon/internal/metrics/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_RangesWithRandomSource(t *testing.T) {
	gen := NewGenerator(NewSource(42))

	ops := map[Kind]func() float64{
		SignalStrength: gen.SignalStrength,
		Latency:        gen.Latency,
		Throughput:     gen.Throughput,
		Frequency:      gen.Frequency,
		RSRP:           gen.RSRP,
		RSRQ:           gen.RSRQ,
	}

	for kind, op := range ops {
		spec := kind.Spec()
		t.Run(spec.Name, func(t *testing.T) {
			for i := 0; i < 5000; i++ {
				v := op()
				require.GreaterOrEqual(t, v, spec.GenMin)
				require.Less(t, v, spec.GenMax)
			}
		})
	}
}

func TestGenerator_RangeEdges(t *testing.T) {
	for _, kind := range Kinds() {
		spec := kind.Spec()
		t.Run(spec.Name, func(t *testing.T) {
			low := NewGenerator(metricstest.NewSequence(0))
			assert.Equal(t, spec.GenMin, low.Generate(kind))

			high := NewGenerator(metricstest.NewSequence(1))
			v := high.Generate(kind)
			assert.Less(t, v, spec.GenMax)
			assert.InDelta(t, spec.GenMax, v, 1e-6)
		})
	}
}

func TestGenerator_LargestFractionStaysBelowMax(t *testing.T) {
	r := math.Nextafter(1, 0)

	for _, kind := range Kinds() {
		spec := kind.Spec()
		t.Run(spec.Name, func(t *testing.T) {
			gen := NewGenerator(metricstest.NewSequence(r))
			v := gen.Generate(kind)
			assert.GreaterOrEqual(t, v, spec.GenMin)
			assert.Less(t, v, spec.GenMax)
		})
	}
}

func TestGenerator_Midpoint(t *testing.T) {
	gen := NewGenerator(metricstest.NewSequence(0.5))

	assert.InDelta(t, -55.0, gen.SignalStrength(), 1e-9)
	assert.InDelta(t, 50.0, gen.Latency(), 1e-9)
	assert.InDelta(t, 110.0, gen.Throughput(), 1e-9)
	assert.InDelta(t, 4.2, gen.Frequency(), 1e-9)
	assert.InDelta(t, -100.0, gen.RSRP(), 1e-9)
	assert.InDelta(t, -15.0, gen.RSRQ(), 1e-9)
}

func TestGenerator_SeededIsReproducible(t *testing.T) {
	a := NewGenerator(NewSource(7))
	b := NewGenerator(NewSource(7))

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Latency(), b.Latency())
	}
}

func TestGenerator_Snapshot(t *testing.T) {
	src := metricstest.NewSequence(0.5)
	gen := NewGenerator(src)
	fixed := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	gen.now = func() time.Time { return fixed }

	snap := gen.Snapshot()

	require.Len(t, snap.Readings, 6)
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, fixed, snap.TakenAt)
	assert.Equal(t, 6, src.Calls, "one draw per metric")

	for i, r := range snap.Readings {
		spec := Kind(i).Spec()
		assert.Equal(t, spec.Name, r.Name)
		assert.Equal(t, spec.Unit, r.Unit)
		assert.Equal(t, spec.AcceptMin, r.AcceptMin)
		assert.Equal(t, spec.AcceptMax, r.AcceptMax)
	}

	other := gen.Snapshot()
	assert.NotEqual(t, snap.ID, other.ID)
}

func TestSnapshot_WithinAndFind(t *testing.T) {
	// At the midpoint latency is exactly 50ms, which is the inclusive upper bound.
	gen := NewGenerator(metricstest.NewSequence(0.5))
	snap := gen.Snapshot()

	// Signal -55 within, latency 50 within, throughput 110 within,
	// frequency 4.2 within, RSRP -100 within, RSRQ -15 within.
	assert.Equal(t, 6, snap.Within())

	r, ok := snap.Find("Latency")
	require.True(t, ok)
	assert.InDelta(t, 50.0, r.Value, 1e-9)

	_, ok = snap.Find("jitter")
	assert.False(t, ok)
}

func TestGenerator_Recent(t *testing.T) {
	gen := NewGenerator(metricstest.NewSequence(0, 0.25, 0.5, 0.75, 0.9))

	values, err := gen.Recent("Latency", DefaultRecentSamples)

	require.NoError(t, err)
	assert.Len(t, values, 5)
	expected := []float64{20, 35, 50, 65, 74}
	for i := range expected {
		assert.InDelta(t, expected[i], values[i], 1e-9)
	}
}

func TestGenerator_RecentByKey(t *testing.T) {
	gen := NewGenerator(NewSource(1))

	values, err := gen.Recent("rsrq", 3)

	require.NoError(t, err)
	require.Len(t, values, 3)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, -20.0)
		assert.Less(t, v, -10.0)
	}
}

func TestGenerator_RecentUnknownName(t *testing.T) {
	src := metricstest.NewSequence(0.5)
	gen := NewGenerator(src)

	values, err := gen.Recent("Jitter", DefaultRecentSamples)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrMetric))
	assert.Contains(t, err.Error(), "Jitter")
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, values)
	assert.Zero(t, src.Calls, "unknown metric must not consume randomness")
}

func TestGenerator_RecentNonPositiveCount(t *testing.T) {
	gen := NewGenerator(NewSource(1))

	values, err := gen.Recent("Latency", 0)
	require.NoError(t, err)
	assert.Empty(t, values)

	values, err = gen.Recent("Latency", -3)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestUnknownMetricError_Suggestion(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"typo of a name", "Latncy", "Did you mean 'Latency'? Pick one of:"},
		{"typo of a key", "singal", "Did you mean 'Signal Strength'? Pick one of:"},
		{"nothing close", "bandwidth", "Pick one of: Signal Strength, Latency, Throughput, Frequency, RSRP, RSRQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, suggestion := errors.Parts(UnknownMetricError(tt.input))
			assert.True(t, strings.HasPrefix(suggestion, tt.expect), suggestion)
		})
	}
}
