package diagram

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Serialization Types
// =============================================================================

// jsonDiagram is the node-link wire format for diagrams. Cluster membership
// is flattened into a path on each node so the format stays a flat record
// list, matching how most infrastructure-graph tooling exchanges graphs.
type jsonDiagram struct {
	Name      string     `json:"name"`
	Outfile   string     `json:"outfile,omitempty"`
	Direction string     `json:"direction,omitempty"`
	Nodes     []jsonNode `json:"nodes"`
	Edges     []jsonEdge `json:"edges"`
}

type jsonNode struct {
	ID       string   `json:"id"`
	Label    string   `json:"label,omitempty"`
	Category Category `json:"category"`
	Cluster  []string `json:"cluster,omitempty"` // path from root, outermost first
}

type jsonEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
	Style string `json:"style,omitempty"`
}

// =============================================================================
// Serialization API
// =============================================================================

// MarshalDiagram converts a diagram to pretty-printed JSON bytes.
func MarshalDiagram(d *Diagram) ([]byte, error) {
	return json.MarshalIndent(toJSON(d), "", "  ")
}

// UnmarshalDiagram decodes JSON bytes into a Diagram and validates it.
func UnmarshalDiagram(data []byte) (*Diagram, error) {
	var jd jsonDiagram
	if err := json.Unmarshal(data, &jd); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return fromJSON(jd)
}

// WriteDiagram writes a diagram as JSON to an io.Writer.
func WriteDiagram(d *Diagram, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSON(d)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteDiagramFile writes a diagram to a JSON file with 0644 permissions.
func WriteDiagramFile(d *Diagram, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteDiagram(d, f)
}

// ReadDiagramFile reads a JSON file and returns the decoded diagram.
func ReadDiagramFile(path string) (*Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalDiagram(data)
}

// =============================================================================
// Internal Conversion
// =============================================================================

func toJSON(d *Diagram) jsonDiagram {
	out := jsonDiagram{
		Name:      d.Name,
		Outfile:   d.Outfile,
		Direction: d.Direction,
		Edges:     make([]jsonEdge, len(d.Edges)),
	}

	for _, n := range d.Nodes {
		out.Nodes = append(out.Nodes, jsonNode{ID: n.ID, Label: n.Label, Category: n.Category})
	}

	var walk func(c *Cluster, path []string)
	walk = func(c *Cluster, path []string) {
		path = append(path, c.Name)
		for _, n := range c.Nodes {
			out.Nodes = append(out.Nodes, jsonNode{
				ID:       n.ID,
				Label:    n.Label,
				Category: n.Category,
				Cluster:  append([]string(nil), path...),
			})
		}
		for i := range c.Clusters {
			walk(&c.Clusters[i], path)
		}
	}
	for i := range d.Clusters {
		walk(&d.Clusters[i], nil)
	}

	for i, e := range d.Edges {
		out.Edges[i] = jsonEdge{From: e.From, To: e.To, Label: e.Label, Style: e.Style}
	}
	return out
}

func fromJSON(jd jsonDiagram) (*Diagram, error) {
	d := &Diagram{
		Name:      jd.Name,
		Outfile:   jd.Outfile,
		Direction: jd.Direction,
		Edges:     make([]Edge, len(jd.Edges)),
	}

	for _, jn := range jd.Nodes {
		node := Node{ID: jn.ID, Label: jn.Label, Category: jn.Category}
		if len(jn.Cluster) == 0 {
			d.Nodes = append(d.Nodes, node)
			continue
		}
		cluster := ensureClusterPath(d, jn.Cluster)
		cluster.Nodes = append(cluster.Nodes, node)
	}

	for i, je := range jd.Edges {
		d.Edges[i] = Edge{From: je.From, To: je.To, Label: je.Label, Style: je.Style}
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// ensureClusterPath walks the cluster path, creating clusters as needed,
// and returns the innermost one.
func ensureClusterPath(d *Diagram, path []string) *Cluster {
	clusters := &d.Clusters
	var target *Cluster
	for _, name := range path {
		target = nil
		for i := range *clusters {
			if (*clusters)[i].Name == name {
				target = &(*clusters)[i]
				break
			}
		}
		if target == nil {
			*clusters = append(*clusters, Cluster{Name: name})
			target = &(*clusters)[len(*clusters)-1]
		}
		clusters = &target.Clusters
	}
	return target
}
