package topology

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gcptools/archdiag/pkg/diagram"
	"github.com/gcptools/archdiag/pkg/errors"
)

// Decl is the declarative TOML topology format: flat record lists with
// parent references instead of nested structure, so the file stays close
// to how people list out infrastructure inventories.
//
//	name = "My Infra"
//	outfile = "my_infra"
//	direction = "TB"
//
//	[[cluster]]
//	name = "Global Services"
//
//	[[cluster]]
//	name = "Compute"
//	parent = "Global Services"
//
//	[[node]]
//	id = "dns"
//	label = "Cloud DNS"
//	category = "network/dns"
//	cluster = "Global Services"
//
//	[[edge]]
//	from = "users"
//	to = "dns"
type Decl struct {
	Name      string        `toml:"name"`
	Outfile   string        `toml:"outfile"`
	Direction string        `toml:"direction"`
	Clusters  []ClusterDecl `toml:"cluster"`
	Nodes     []NodeDecl    `toml:"node"`
	Edges     []EdgeDecl    `toml:"edge"`
}

// ClusterDecl declares a cluster, optionally nested under a parent cluster.
type ClusterDecl struct {
	Name   string `toml:"name"`
	Parent string `toml:"parent"`
}

// NodeDecl declares a node, optionally placed inside a cluster.
type NodeDecl struct {
	ID       string `toml:"id"`
	Label    string `toml:"label"`
	Category string `toml:"category"`
	Cluster  string `toml:"cluster"`
}

// EdgeDecl declares a directed edge between two node IDs.
type EdgeDecl struct {
	From  string `toml:"from"`
	To    string `toml:"to"`
	Label string `toml:"label"`
	Style string `toml:"style"`
}

// LoadFile reads a TOML topology declaration and builds a validated diagram.
func LoadFile(path string) (*diagram.Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "topology file %s", path)
		}
		return nil, err
	}

	var decl Decl
	if err := toml.Unmarshal(data, &decl); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}

	if decl.Outfile == "" {
		base := filepath.Base(path)
		decl.Outfile = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return Build(decl)
}

// Build converts a declaration into a validated diagram. Unknown cluster
// references, unknown categories, duplicate IDs, and dangling edges are
// all construction-time errors.
func Build(decl Decl) (*diagram.Diagram, error) {
	d := &diagram.Diagram{
		Name:      decl.Name,
		Outfile:   decl.Outfile,
		Direction: decl.Direction,
	}
	if d.Direction == "" {
		d.Direction = diagram.DirectionTB
	}

	// Clusters must be declared before they are referenced as parents,
	// which keeps the format order-dependent but cycle-free.
	index := make(map[string]*diagram.Cluster)
	for _, cd := range decl.Clusters {
		if cd.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "cluster with empty name")
		}
		if _, exists := index[cd.Name]; exists {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate cluster name %q", cd.Name)
		}

		if cd.Parent == "" {
			d.Clusters = append(d.Clusters, diagram.Cluster{Name: cd.Name})
		} else {
			parent, ok := index[cd.Parent]
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidInput, "cluster %q references undeclared parent %q", cd.Name, cd.Parent)
			}
			parent.Clusters = append(parent.Clusters, diagram.Cluster{Name: cd.Name})
		}
		// Appends may reallocate slices, so pointers in the index go stale.
		reindex(d, index)
	}

	for _, nd := range decl.Nodes {
		cat := diagram.Category(nd.Category)
		if !diagram.ValidCategory(cat) {
			return nil, errors.New(errors.ErrCodeInvalidCategory, "node %q has unknown category %q", nd.ID, nd.Category)
		}
		node := diagram.Node{ID: nd.ID, Label: nd.Label, Category: cat}

		if nd.Cluster == "" {
			d.Nodes = append(d.Nodes, node)
			continue
		}
		cluster, ok := index[nd.Cluster]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "node %q references undeclared cluster %q", nd.ID, nd.Cluster)
		}
		cluster.Nodes = append(cluster.Nodes, node)
	}

	for _, ed := range decl.Edges {
		d.Edges = append(d.Edges, diagram.Edge{From: ed.From, To: ed.To, Label: ed.Label, Style: ed.Style})
	}

	if err := d.Validate(); err != nil {
		return nil, errors.Wrap(validationCode(err), err, "invalid topology %q", decl.Name)
	}
	return d, nil
}

// validationCode maps diagram sentinel errors to their error codes.
func validationCode(err error) errors.Code {
	switch {
	case stderrors.Is(err, diagram.ErrDanglingEdge):
		return errors.ErrCodeDanglingEdge
	case stderrors.Is(err, diagram.ErrDuplicateNodeID):
		return errors.ErrCodeDuplicateNode
	default:
		return errors.ErrCodeInvalidInput
	}
}

// reindex rebuilds the name index after an append may have reallocated
// cluster slices and invalidated earlier pointers.
func reindex(d *diagram.Diagram, index map[string]*diagram.Cluster) {
	clear(index)
	var walk func(cs []diagram.Cluster)
	walk = func(cs []diagram.Cluster) {
		for i := range cs {
			index[cs[i].Name] = &cs[i]
			walk(cs[i].Clusters)
		}
	}
	walk(d.Clusters)
}
