// SPDX-License-Identifier: MIT
// Package core defines the Store, Node and Snapshot types, the sentinel errors,
// and the NewStore constructor.
//
// Errors:
//
//	ErrEmptyLabel    - node label is the empty string.
//	ErrNodeNotFound  - requested node does not exist.
//	ErrMissingEdge   - one side of a mirrored edge is absent.
//	ErrMirrorBroken  - outgoing and incoming copies of an edge disagree.
package core

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for store operations.
var (
	// ErrEmptyLabel indicates that the provided node label is empty.
	ErrEmptyLabel = errors.New("core: node label is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrMissingEdge indicates that an edge, or its mirrored entry, is absent.
	ErrMissingEdge = errors.New("core: missing edge")

	// ErrMirrorBroken indicates that outgoing and incoming adjacency disagree.
	ErrMirrorBroken = errors.New("core: mirror inconsistency")
)

// MissingEdgeError is returned by RemoveEdge when either mirrored entry of
// From→To is absent. It wraps ErrMissingEdge.
type MissingEdgeError struct {
	From, To string
	// OutPresent and InPresent report which of the two copies were found.
	OutPresent, InPresent bool
}

func (e *MissingEdgeError) Error() string {
	return fmt.Sprintf("core: missing edge %q→%q (out=%t in=%t)", e.From, e.To, e.OutPresent, e.InPresent)
}

// Unwrap lets errors.Is match ErrMissingEdge.
func (e *MissingEdgeError) Unwrap() error { return ErrMissingEdge }

// NodeID addresses a node slot in the store arena. IDs are assigned in
// insertion order and never reused.
type NodeID int

// Node is a read-only view of one live node.
type Node struct {
	// ID is the arena slot of this node.
	ID NodeID

	// Label is the token string or synthetic wildcard label.
	Label string

	// Frequency counts occurrences across all ingested samples.
	Frequency int

	// WildcardSpan is the average number of original nodes absorbed into this
	// node by simplification. Zero for untouched tokens.
	WildcardSpan float64
}

// vertex is the arena record behind a Node.
type vertex struct {
	label     string
	frequency int
	span      float64
	alive     bool
}

// Option configures a Store before use.
type Option func(s *Store)

// WithLogger routes store diagnostics (recoverable merge anomalies) to l.
// A nil logger keeps the default discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Store is the directed, weighted graph store with mirrored adjacency.
//
// vertices is the arena; index maps live labels to slots.
// out[from][to] and in[to][from] hold the same weight for every edge.
// start holds the start-state distribution keyed by slot.
type Store struct {
	vertices []vertex
	index    map[string]NodeID

	out []map[NodeID]float64
	in  []map[NodeID]float64

	start map[NodeID]float64

	maxFrequency int
	edgeCount    int

	logger *slog.Logger
}

// NewStore creates an empty Store.
// Complexity: O(1)
func NewStore(opts ...Option) *Store {
	s := &Store{
		index:  make(map[string]NodeID),
		start:  make(map[NodeID]float64),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Logger returns the logger the store reports to.
func (s *Store) Logger() *slog.Logger { return s.logger }
