// Package seqpattern is an in-memory engine that learns a generalized,
// probabilistic model of token sequences and scores new sequences against it.
//
// What is seqpattern?
//
//	A per-category sequence pattern graph built from example token sequences:
//		• Ingestion: start states, transitions and token frequencies
//		• Simplification: rare tokens collapse into wildcard nodes
//		• Normalization: counts become probabilities
//		• Scoring: exact transitions, or a penalized wildcard escape
//
// Everything is organized under four packages plus the command:
//
//	core/          arena-backed Store with mirrored adjacency and MergeNodes
//	bfs/           component traversal that tolerates merges mid-walk
//	dijkstra/      cheapest (most probable) paths over the Store
//	pattern/       Graph lifecycle: AddSample, Simplify, Normalize, Score, Train
//	cmd/seqgraph/  train, score, inspect and path commands
//
// Quick example:
//
//	samples: "open read close", "open read flush"
//
//	    open ──► read ──► _*_0      (close and flush are rare)
//
//	Score("open read")      = 1
//	Score("open read seek") = 1 × 1 × (1 × penalty)
//	Score("mmap")           = 0
//
//	go get github.com/katalvlaran/seqpattern/pattern
package seqpattern
