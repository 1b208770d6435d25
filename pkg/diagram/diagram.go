package diagram

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNodeID is returned by [Diagram.Validate] when a node has an
	// empty identifier. All nodes must have non-empty IDs.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Diagram.Validate] when two nodes
	// share an identifier. Node IDs must be unique across the entire
	// diagram, regardless of which cluster declares them.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrDanglingEdge is returned by [Diagram.Validate] when an edge
	// references a node ID that was never declared.
	ErrDanglingEdge = errors.New("edge references undeclared node")

	// ErrInvalidClusterName is returned by [Diagram.Validate] when a
	// cluster has an empty name. Names are the only handle for clusters.
	ErrInvalidClusterName = errors.New("cluster name must not be empty")
)

// Layout direction hints passed through to the renderer.
const (
	DirectionTB = "TB" // top to bottom
	DirectionLR = "LR" // left to right
)

// Category identifies the resource family a node belongs to. It maps to a
// visual style (color, caption) in pkg/render. The values mirror common GCP
// product families plus two external categories for actors outside the
// cloud boundary.
type Category string

// Node categories.
const (
	// External actors
	CategoryUsers    Category = "external/users"
	CategoryInternet Category = "external/internet"

	// Compute
	CategoryComputeEngine Category = "compute/engine"
	CategoryGKE           Category = "compute/gke"
	CategoryCloudRun      Category = "compute/run"

	// Database
	CategoryCloudSQL    Category = "database/sql"
	CategoryMemorystore Category = "database/memorystore"

	// Network
	CategoryVPC          Category = "network/vpc"
	CategoryLoadBalancer Category = "network/load-balancer"
	CategoryDNS          Category = "network/dns"
	CategoryFirewall     Category = "network/firewall"

	// Storage
	CategoryCloudStorage Category = "storage/gcs"
	CategoryFilestore    Category = "storage/filestore"

	// Security
	CategoryIAM Category = "security/iam"
	CategoryKMS Category = "security/kms"

	// Analytics and tooling
	CategoryBigQuery         Category = "analytics/bigquery"
	CategoryArtifactRegistry Category = "devtools/artifact-registry"
)

// Categories returns all known node categories.
func Categories() []Category {
	return []Category{
		CategoryUsers, CategoryInternet,
		CategoryComputeEngine, CategoryGKE, CategoryCloudRun,
		CategoryCloudSQL, CategoryMemorystore,
		CategoryVPC, CategoryLoadBalancer, CategoryDNS, CategoryFirewall,
		CategoryCloudStorage, CategoryFilestore,
		CategoryIAM, CategoryKMS,
		CategoryBigQuery, CategoryArtifactRegistry,
	}
}

// ValidCategory reports whether c is a known category.
func ValidCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Node is a single labeled resource in the diagram. Nodes are descriptive
// records with no behavior; they are created once at build time and never
// mutated.
type Node struct {
	ID       string   // Unique identifier within the diagram
	Label    string   // Display text (free form, may contain newlines)
	Category Category // Resource family, drives visual style
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a directed connection between two node IDs. Endpoints are not
// checked at construction; call [Diagram.Validate] before rendering.
type Edge struct {
	From  string // Source node ID
	To    string // Destination node ID
	Label string // Optional edge caption
	Style string // Optional line style ("dashed", "dotted", "bold")
}

// Cluster is a named visual container holding nodes and nested clusters.
// Clusters exist purely for visual grouping; they carry no semantics.
type Cluster struct {
	Name     string
	Nodes    []Node
	Clusters []Cluster
}

// AllNodes returns every node in the cluster and its nested clusters,
// in declaration order.
func (c *Cluster) AllNodes() []Node {
	nodes := append([]Node(nil), c.Nodes...)
	for i := range c.Clusters {
		nodes = append(nodes, c.Clusters[i].AllNodes()...)
	}
	return nodes
}

// Find returns the first cluster with the given name, searching the
// cluster itself and nested clusters depth-first. Returns nil if not found.
func (c *Cluster) Find(name string) *Cluster {
	if c.Name == name {
		return c
	}
	for i := range c.Clusters {
		if found := c.Clusters[i].Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Diagram is the top-level description of one output artifact. It is
// created, populated, validated, rendered, and then discarded; there is no
// further lifecycle.
type Diagram struct {
	Name      string    // Display title
	Outfile   string    // Output file name without extension
	Direction string    // Layout hint, DirectionTB or DirectionLR
	Nodes     []Node    // Nodes at the diagram root
	Clusters  []Cluster // Top-level clusters
	Edges     []Edge    // All edges, flat
}

// AllNodes returns every node in the diagram, root nodes first, then
// cluster nodes in declaration order.
func (d *Diagram) AllNodes() []Node {
	nodes := append([]Node(nil), d.Nodes...)
	for i := range d.Clusters {
		nodes = append(nodes, d.Clusters[i].AllNodes()...)
	}
	return nodes
}

// NodeCount returns the total number of nodes, including cluster nodes.
func (d *Diagram) NodeCount() int { return len(d.AllNodes()) }

// EdgeCount returns the number of declared edges.
func (d *Diagram) EdgeCount() int { return len(d.Edges) }

// ClusterCount returns the total number of clusters, including nested ones.
func (d *Diagram) ClusterCount() int {
	count := 0
	var walk func(cs []Cluster)
	walk = func(cs []Cluster) {
		count += len(cs)
		for i := range cs {
			walk(cs[i].Clusters)
		}
	}
	walk(d.Clusters)
	return count
}

// FindCluster returns the first cluster with the given name anywhere in the
// tree, or nil if no such cluster exists.
func (d *Diagram) FindCluster(name string) *Cluster {
	for i := range d.Clusters {
		if found := d.Clusters[i].Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Validate checks the structural invariants required for rendering:
// non-empty unique node IDs, non-empty cluster names, and edges whose
// endpoints are declared nodes. A dangling edge reference is an error
// rather than a silent pass-through to the layout engine.
func (d *Diagram) Validate() error {
	seen := make(map[string]bool)
	for _, n := range d.AllNodes() {
		if n.ID == "" {
			return ErrInvalidNodeID
		}
		if seen[n.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateNodeID, n.ID)
		}
		seen[n.ID] = true
	}

	var checkClusters func(cs []Cluster) error
	checkClusters = func(cs []Cluster) error {
		for i := range cs {
			if cs[i].Name == "" {
				return ErrInvalidClusterName
			}
			if err := checkClusters(cs[i].Clusters); err != nil {
				return err
			}
		}
		return nil
	}
	if err := checkClusters(d.Clusters); err != nil {
		return err
	}

	for _, e := range d.Edges {
		if !seen[e.From] {
			return fmt.Errorf("%w: %s -> %s (unknown source %q)", ErrDanglingEdge, e.From, e.To, e.From)
		}
		if !seen[e.To] {
			return fmt.Errorf("%w: %s -> %s (unknown target %q)", ErrDanglingEdge, e.From, e.To, e.To)
		}
	}
	return nil
}
