// Package conncomp is an in-memory toolkit for discovering the connectivity
// structure of graphs — weakly-connected components for any graph, and
// strongly-connected components for directed ones.
//
// 🚀 What is conncomp?
//
//	A small, thread-aware, zero-dependency library that brings together:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Weak components: iterative DFS partitioning, push- and pull-style
//		• Strong components: path-based single-pass SCC (no low-link numbers)
//		• Largest-component selection with a provable early-exit bound
//		• Subgraph extraction and in-place cropping to the largest component
//
// ✨ Why choose conncomp?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks on the core, deterministic enumeration
//   - Pure Go – no cgo, no hidden deps
//   - Recursion-free – explicit stacks everywhere, deep graphs are safe
//
// Under the hood, everything is organized under two subpackages:
//
//	core/       — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	components/ — weak & strong component walkers, selectors, subgraph ops
//
// Quick ASCII example:
//
//	    A───B       X──▶Y
//	    │   │        ▲  │
//	    C───D        └──┘
//
//	{A,B,C,D} is one weak component; {X,Y} is one strong component.
//
// Dive into the components package docs for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/conncomp
package conncomp
