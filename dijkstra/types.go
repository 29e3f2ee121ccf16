// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm over a core.Store.
//
// Edge weights are turned into costs by an optional Cost function (identity by
// default); every cost must be non-negative. For probability graphs use
// NegLog, which makes the cheapest path the most probable one.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source label is empty.
//	– ErrNilStore        if the provided store pointer is nil.
//	– ErrVertexNotFound  if the source label does not exist in the store.
//	– ErrNegativeWeight  if a negative edge cost is detected.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrNoPath          if Path is asked for an unreachable destination.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source label is empty.
	ErrEmptySource = errors.New("dijkstra: source label is empty")

	// ErrNilStore indicates that a nil *core.Store was passed to Dijkstra.
	ErrNilStore = errors.New("dijkstra: store is nil")

	// ErrVertexNotFound indicates that the source label does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source not found in store")

	// ErrNegativeWeight indicates that a negative edge cost was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge cost encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that the destination was not reached.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting label (must be non-empty and present in the store).
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – nodes whose distance would exceed this are not explored.
// Cost        – maps an edge weight to a traversal cost.
type Options struct {
	Source      string
	ReturnPath  bool
	MaxDistance float64
	Cost        func(weight float64) float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting label. Must be supplied.
func Source(label string) Option {
	return func(o *Options) {
		o.Source = label
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithCost sets the weight → cost transform.
func WithCost(fn func(weight float64) float64) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// NegLog is the cost of a probability p: -ln p. A zero probability costs +Inf.
func NegLog(p float64) float64 { return -math.Log(p) }

// DefaultOptions returns Options for source with no distance cap, identity
// cost and no predecessor map.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.Inf(1),
		Cost:        func(w float64) float64 { return w },
	}
}
