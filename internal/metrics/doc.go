// Package metrics generates simulated 5G network quality readings and
// classifies them against per-metric acceptable ranges.
//
// Six metrics are known (see Catalog). Each has a generation range, from
// which values are drawn uniformly, and an acceptable range, against which a
// Reading is classified as below, within or above acceptable.
//
// Randomness comes from an injected Source so that callers and tests control
// the sequence. A Generator owns its Source and is not safe for concurrent use.
package metrics
