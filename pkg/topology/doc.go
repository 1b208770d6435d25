// Package topology declares the built-in infrastructure topologies.
//
// Each topology is a pure function returning a fully-formed
// [diagram.Diagram]: node list, cluster tree, and edge list. No shared
// state exists between builders, and no rendering happens here; callers
// hand the description to pkg/render separately. Calling a builder twice
// yields deep-equal diagrams.
//
// Two topologies ship with the tool:
//
//   - [Comprehensive]: the full multi-region GCP deployment with
//     networking, compute, database, storage, security, and monitoring
//     components (~40 nodes).
//   - [Simplified]: a high-level overview of the same infrastructure
//     (13 nodes).
//
// Custom topologies can be described in TOML files and loaded with
// [LoadFile]; see the Decl types for the record format.
package topology
