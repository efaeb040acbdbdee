package metrics

// Status is the classification of a reading against its acceptable range.
type Status int

const (
	StatusWithin Status = iota
	StatusBelow
	StatusAbove
)

// String returns the human-readable status label.
func (s Status) String() string {
	switch s {
	case StatusBelow:
		return "below acceptable"
	case StatusAbove:
		return "above acceptable"
	default:
		return "within acceptable"
	}
}

// Classify places v relative to [min, max]. Both bounds are inclusive, and
// anything that is neither below nor above (including NaN) is within.
func Classify(v, min, max float64) Status {
	switch {
	case v < min:
		return StatusBelow
	case v > max:
		return StatusAbove
	default:
		return StatusWithin
	}
}

// Reading is a single metric value together with its unit and acceptable range.
type Reading struct {
	Name      string  `json:"name" yaml:"name"`
	Value     float64 `json:"value" yaml:"value"`
	Unit      string  `json:"unit" yaml:"unit"`
	AcceptMin float64 `json:"accept_min" yaml:"accept_min"`
	AcceptMax float64 `json:"accept_max" yaml:"accept_max"`
}

// NewReading wraps value with the unit and acceptable range of spec.
func NewReading(spec Spec, value float64) Reading {
	return Reading{
		Name:      spec.Name,
		Value:     value,
		Unit:      spec.Unit,
		AcceptMin: spec.AcceptMin,
		AcceptMax: spec.AcceptMax,
	}
}

// Status classifies the reading against its acceptable range.
func (r Reading) Status() Status {
	return Classify(r.Value, r.AcceptMin, r.AcceptMax)
}
