// Package diagram defines the data model for architecture diagrams.
//
// A [Diagram] is a purely declarative description of what to draw: labeled,
// categorized [Node] values grouped into a tree of [Cluster] containers,
// connected by directed [Edge] values. The model carries no rendering logic;
// pkg/render consumes a Diagram and hands layout to Graphviz.
//
// # Structure
//
// Nodes live either at the diagram root or inside exactly one innermost
// cluster. Clusters nest arbitrarily deep. Edges reference nodes by ID and
// are kept in a flat list on the diagram, regardless of where the endpoints
// sit in the cluster tree.
//
//	d := &diagram.Diagram{
//	    Name:      "Overview",
//	    Direction: diagram.DirectionTB,
//	    Nodes:     []diagram.Node{{ID: "users", Label: "Users", Category: diagram.CategoryUsers}},
//	    Clusters: []diagram.Cluster{{
//	        Name:  "Global Services",
//	        Nodes: []diagram.Node{{ID: "dns", Label: "Cloud DNS", Category: diagram.CategoryDNS}},
//	    }},
//	    Edges: []diagram.Edge{{From: "users", To: "dns"}},
//	}
//	if err := d.Validate(); err != nil { ... }
//
// # Validation
//
// The model itself accepts anything; [Diagram.Validate] checks the two
// structural invariants that matter before rendering: node IDs are unique
// across the whole diagram, and every edge endpoint names a declared node.
// Cycles, duplicate edges, and self-loops are all permitted.
//
// # Serialization
//
// Diagrams round-trip through a node-link JSON format via [MarshalDiagram],
// [UnmarshalDiagram], [WriteDiagramFile], and [ReadDiagramFile].
package diagram
