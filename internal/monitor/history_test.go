package monitor

import (
	"testing"

	"github.com/rileyhilliard/netmon/internal/metrics"
	"github.com/stretchr/testify/assert"
)

func snapshotOf(values map[string]float64) metrics.Snapshot {
	var snap metrics.Snapshot
	for name, v := range values {
		snap.Readings = append(snap.Readings, metrics.Reading{Name: name, Value: v})
	}
	return snap
}

func TestNewHistory(t *testing.T) {
	assert.Equal(t, 10, NewHistory(10).Size())
	assert.Equal(t, DefaultHistorySize, NewHistory(0).Size())
	assert.Equal(t, DefaultHistorySize, NewHistory(-3).Size())
}

func TestHistory_PushAndGet(t *testing.T) {
	h := NewHistory(5)

	for i := 1; i <= 3; i++ {
		h.Push(snapshotOf(map[string]float64{"Latency": float64(i * 10)}))
	}

	assert.Equal(t, 3, h.Count("Latency"))
	assert.Equal(t, []float64{10, 20, 30}, h.Get("Latency", 10))
	assert.Equal(t, []float64{20, 30}, h.Get("Latency", 2))
	assert.Nil(t, h.Get("Latency", 0))
	assert.Nil(t, h.Get("RSRP", 5))
	assert.Equal(t, 0, h.Count("RSRP"))
}

func TestHistory_Wraps(t *testing.T) {
	h := NewHistory(3)

	for i := 1; i <= 5; i++ {
		h.Push(snapshotOf(map[string]float64{"RSRQ": float64(i)}))
	}

	assert.Equal(t, 3, h.Count("RSRQ"))
	assert.Equal(t, []float64{3, 4, 5}, h.Get("RSRQ", 3))
}

func TestHistory_ClearAll(t *testing.T) {
	h := NewHistory(3)
	h.Push(snapshotOf(map[string]float64{"a": 1, "b": 2}))

	h.ClearAll()

	assert.Equal(t, 0, h.Count("a"))
	assert.Equal(t, 0, h.Count("b"))
}
