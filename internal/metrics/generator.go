package metrics

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rileyhilliard/netmon/internal/errors"
	"github.com/rileyhilliard/netmon/internal/util"
)

// DefaultRecentSamples is how many values the detail view shows per metric.
const DefaultRecentSamples = 5

// Generator draws simulated metric values from a Source.
type Generator struct {
	src Source
	now func() time.Time
}

// NewGenerator creates a generator backed by src.
func NewGenerator(src Source) *Generator {
	return &Generator{src: src, now: time.Now}
}

// Generate draws one value for k from its generation range. The upper bound
// is exclusive even when rounding lands on it.
// Panics if k is not a known metric.
func (g *Generator) Generate(k Kind) float64 {
	spec := k.Spec()
	v := spec.GenMin + g.src.Float64()*(spec.GenMax-spec.GenMin)
	if v >= spec.GenMax {
		v = math.Nextafter(spec.GenMax, spec.GenMin)
	}
	return v
}

// SignalStrength returns a value in [-70, -40) dBm.
func (g *Generator) SignalStrength() float64 { return g.Generate(SignalStrength) }

// Latency returns a value in [20, 80) ms.
func (g *Generator) Latency() float64 { return g.Generate(Latency) }

// Throughput returns a value in [100, 120) Mbps.
func (g *Generator) Throughput() float64 { return g.Generate(Throughput) }

// Frequency returns a value in [2.4, 6.0) GHz.
func (g *Generator) Frequency() float64 { return g.Generate(Frequency) }

// RSRP returns a value in [-115, -85) dBm.
func (g *Generator) RSRP() float64 { return g.Generate(RSRP) }

// RSRQ returns a value in [-20, -10) dB.
func (g *Generator) RSRQ() float64 { return g.Generate(RSRQ) }

// Reading generates a fresh value for k and wraps it with its catalog row.
func (g *Generator) Reading(k Kind) Reading {
	return NewReading(k.Spec(), g.Generate(k))
}

// Snapshot is one generated reading per metric, taken together.
type Snapshot struct {
	ID       string    `json:"id" yaml:"id"`
	TakenAt  time.Time `json:"taken_at" yaml:"taken_at"`
	Readings []Reading `json:"readings" yaml:"readings"`
}

// Snapshot generates one reading for every metric, in catalog order.
func (g *Generator) Snapshot() Snapshot {
	readings := make([]Reading, 0, len(catalog))
	for _, k := range Kinds() {
		readings = append(readings, g.Reading(k))
	}
	return Snapshot{
		ID:       uuid.New().String(),
		TakenAt:  g.now(),
		Readings: readings,
	}
}

// Within returns how many readings in the snapshot are within acceptable.
func (s Snapshot) Within() int {
	n := 0
	for _, r := range s.Readings {
		if r.Status() == StatusWithin {
			n++
		}
	}
	return n
}

// Find returns the reading with the given display name.
func (s Snapshot) Find(name string) (Reading, bool) {
	for _, r := range s.Readings {
		if r.Name == name {
			return r, true
		}
	}
	return Reading{}, false
}

// Recent generates n fresh values for the named metric.
//
// An unknown name yields n zeros along with an ErrMetric error, so callers
// that render the values still have something to show while the error
// explains why they are zero.
func (g *Generator) Recent(name string, n int) ([]float64, error) {
	if n < 0 {
		n = 0
	}
	values := make([]float64, n)

	spec, ok := Lookup(name)
	if !ok {
		return values, UnknownMetricError(name)
	}
	for i := range values {
		values[i] = g.Generate(spec.Kind)
	}
	return values, nil
}

// UnknownMetricError builds the error returned for names outside the catalog.
// Near misses of a name or key get a "did you mean" hint.
func UnknownMetricError(name string) error {
	suggestion := "Pick one of: " + strings.Join(Names(), ", ")
	if near := similarNames(name); len(near) > 0 {
		suggestion = fmt.Sprintf("Did you mean '%s'? ", near[0]) + suggestion
	}
	return errors.New(errors.ErrMetric,
		fmt.Sprintf("Unknown metric '%s'", name),
		suggestion)
}

// similarNames returns display names whose name or key is close to input.
func similarNames(input string) []string {
	candidates := make([]string, 0, 2*len(catalog))
	for _, s := range catalog {
		candidates = append(candidates, s.Name, s.Key)
	}

	var names []string
	seen := make(map[string]bool)
	for _, c := range util.SuggestSimilar(input, candidates, len(candidates)) {
		spec, _ := Lookup(c)
		if !seen[spec.Name] {
			seen[spec.Name] = true
			names = append(names, spec.Name)
		}
	}
	return names
}
