// Package pkg provides the core libraries for archdiag, a generator for
// GCP architecture diagrams.
//
// # Overview
//
// archdiag turns declarative infrastructure topologies into rendered
// architecture diagrams. The pkg directory is organized into five areas:
//
//  1. [diagram] - Domain model (nodes, clusters, edges, validation)
//  2. [topology] - Built-in GCP topologies and the TOML topology format
//  3. [render] - DOT generation, Graphviz rendering, format conversion
//  4. [cache] - Content-addressed artifact cache (file and Redis backends)
//  5. [errors] - Structured error codes shared across the module
//
// # Architecture
//
// The typical data flow through archdiag:
//
//	Topology (built-in or TOML file)
//	         ↓
//	    [diagram] package (model + referential validation)
//	         ↓
//	    [render] package (DOT → Graphviz)
//	         ↓
//	    SVG/PNG/PDF output (via [cache] on repeat runs)
//
// # Quick Start
//
// Build a topology and render it to SVG:
//
//	import (
//	    "context"
//	    "github.com/gcptools/archdiag/pkg/render"
//	    "github.com/gcptools/archdiag/pkg/topology"
//	)
//
//	d := topology.Comprehensive()
//	if err := d.Validate(); err != nil {
//	    return err
//	}
//	dot, err := render.ToDOT(d)
//	if err != nil {
//	    return err
//	}
//	svg, err := render.RenderSVG(context.Background(), dot)
//
// # Main Packages
//
// [diagram] - Diagram model: nodes with GCP service categories, nested
// clusters, directed edges. Validate enforces unique node IDs and rejects
// edges whose endpoints are not declared.
//
// [topology] - The two built-in topologies (comprehensive multi-region and
// simplified overview) plus LoadFile for user-supplied TOML declarations.
//
// [render] - DOT source generation with a GCP color palette, Graphviz
// rendering to SVG and PNG, and PDF conversion via rsvg-convert.
//
// [cache] - Artifact cache keyed by the content hash of the DOT source and
// the output format. FileCache for local runs, RedisCache for shared
// environments, NullCache to disable caching.
//
// [errors] - Error construction with stable machine-readable codes, used
// for CLI exit messages and HTTP responses.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/topology/...     # Specific package
//
// [diagram]: https://pkg.go.dev/github.com/gcptools/archdiag/pkg/diagram
// [topology]: https://pkg.go.dev/github.com/gcptools/archdiag/pkg/topology
// [render]: https://pkg.go.dev/github.com/gcptools/archdiag/pkg/render
// [cache]: https://pkg.go.dev/github.com/gcptools/archdiag/pkg/cache
// [errors]: https://pkg.go.dev/github.com/gcptools/archdiag/pkg/errors
package pkg
