package metrics

import (
	"fmt"
	"strings"
)

// Kind identifies one of the simulated metrics.
type Kind int

const (
	SignalStrength Kind = iota
	Latency
	Throughput
	Frequency
	RSRP
	RSRQ
)

// Spec describes how a metric is generated and judged.
type Spec struct {
	Kind Kind
	Name string // display name, e.g. "Signal Strength"
	Key  string // short CLI name, e.g. "signal"
	Unit string

	// Values are drawn from [GenMin, GenMax).
	GenMin float64
	GenMax float64

	// Readings inside [AcceptMin, AcceptMax] are within acceptable.
	AcceptMin float64
	AcceptMax float64
}

// catalog is indexed by Kind.
var catalog = [...]Spec{
	SignalStrength: {Kind: SignalStrength, Name: "Signal Strength", Key: "signal", Unit: "dBm", GenMin: -70.0, GenMax: -40.0, AcceptMin: -100.0, AcceptMax: -50.0},
	Latency:        {Kind: Latency, Name: "Latency", Key: "latency", Unit: "ms", GenMin: 20.0, GenMax: 80.0, AcceptMin: 1.0, AcceptMax: 50.0},
	Throughput:     {Kind: Throughput, Name: "Throughput", Key: "throughput", Unit: "Mbps", GenMin: 100.0, GenMax: 120.0, AcceptMin: 100.0, AcceptMax: 1000.0},
	Frequency:      {Kind: Frequency, Name: "Frequency", Key: "frequency", Unit: "GHz", GenMin: 2.4, GenMax: 6.0, AcceptMin: 2.4, AcceptMax: 6.0},
	RSRP:           {Kind: RSRP, Name: "RSRP", Key: "rsrp", Unit: "dBm", GenMin: -115.0, GenMax: -85.0, AcceptMin: -140.0, AcceptMax: -44.0},
	RSRQ:           {Kind: RSRQ, Name: "RSRQ", Key: "rsrq", Unit: "dB", GenMin: -20.0, GenMax: -10.0, AcceptMin: -20.0, AcceptMax: -3.0},
}

// Kinds returns every metric kind in display order.
func Kinds() []Kind {
	kinds := make([]Kind, len(catalog))
	for i := range catalog {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Catalog returns a copy of all metric specs in display order.
func Catalog() []Spec {
	specs := make([]Spec, len(catalog))
	copy(specs, catalog[:])
	return specs
}

// Valid reports whether k is a known metric.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(catalog)
}

// Spec returns the catalog row for k. Panics if k is not a known metric.
func (k Kind) Spec() Spec {
	if !k.Valid() {
		panic(fmt.Sprintf("metrics: unknown kind %d", int(k)))
	}
	return catalog[k]
}

// String returns the display name of the metric.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return catalog[k].Name
}

// Lookup finds a metric by display name or key, ignoring case and
// surrounding whitespace.
func Lookup(name string) (Spec, bool) {
	name = strings.TrimSpace(name)
	for _, s := range catalog {
		if strings.EqualFold(s.Name, name) || strings.EqualFold(s.Key, name) {
			return s, true
		}
	}
	return Spec{}, false
}

// Names returns the display names of all metrics in display order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, s := range catalog {
		names[i] = s.Name
	}
	return names
}
