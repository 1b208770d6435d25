package topology

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gcptools/archdiag/pkg/diagram"
	"github.com/gcptools/archdiag/pkg/errors"
)

const declSample = `
name = "Test Infra"
outfile = "test_infra"
direction = "TB"

[[cluster]]
name = "Global"

[[cluster]]
name = "Compute"
parent = "Global"

[[node]]
id = "users"
label = "Users"
category = "external/users"

[[node]]
id = "gke"
label = "GKE Cluster"
category = "compute/gke"
cluster = "Compute"

[[node]]
id = "dns"
label = "Cloud DNS"
category = "network/dns"
cluster = "Global"

[[edge]]
from = "users"
to = "dns"

[[edge]]
from = "dns"
to = "gke"
label = "routes"
`

func TestBuildDecl(t *testing.T) {
	path := filepath.Join(t.TempDir(), "infra.toml")
	if err := os.WriteFile(path, []byte(declSample), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if d.Name != "Test Infra" || d.Outfile != "test_infra" {
		t.Errorf("header = %q/%q", d.Name, d.Outfile)
	}
	if d.NodeCount() != 3 || d.EdgeCount() != 2 {
		t.Errorf("got %d nodes, %d edges; want 3, 2", d.NodeCount(), d.EdgeCount())
	}

	compute := d.FindCluster("Compute")
	if compute == nil {
		t.Fatal("nested cluster missing")
	}
	if len(compute.Nodes) != 1 || compute.Nodes[0].ID != "gke" {
		t.Errorf("Compute cluster nodes = %+v", compute.Nodes)
	}

	global := d.FindCluster("Global")
	if global == nil || len(global.Clusters) != 1 {
		t.Fatal("Global should contain the Compute cluster")
	}
	if d.Edges[1].Label != "routes" {
		t.Errorf("edge label = %q, want routes", d.Edges[1].Label)
	}
}

func TestBuildDeclErrors(t *testing.T) {
	tests := []struct {
		name     string
		decl     Decl
		wantCode errors.Code
	}{
		{
			name: "UnknownCategory",
			decl: Decl{
				Name:  "x",
				Nodes: []NodeDecl{{ID: "a", Category: "compute/quantum"}},
			},
			wantCode: errors.ErrCodeInvalidCategory,
		},
		{
			name: "UnknownCluster",
			decl: Decl{
				Name:  "x",
				Nodes: []NodeDecl{{ID: "a", Category: "network/vpc", Cluster: "ghost"}},
			},
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name: "UnknownParent",
			decl: Decl{
				Name:     "x",
				Clusters: []ClusterDecl{{Name: "child", Parent: "ghost"}},
			},
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name: "DanglingEdge",
			decl: Decl{
				Name:  "x",
				Nodes: []NodeDecl{{ID: "a", Category: "network/vpc"}},
				Edges: []EdgeDecl{{From: "a", To: "ghost"}},
			},
			wantCode: errors.ErrCodeDanglingEdge,
		},
		{
			name: "DuplicateNode",
			decl: Decl{
				Name: "x",
				Nodes: []NodeDecl{
					{ID: "a", Category: "network/vpc"},
					{ID: "a", Category: "network/dns"},
				},
			},
			wantCode: errors.ErrCodeDuplicateNode,
		},
		{
			name: "DuplicateCluster",
			decl: Decl{
				Name:     "x",
				Clusters: []ClusterDecl{{Name: "c"}, {Name: "c"}},
			},
			wantCode: errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.decl)
			if !errors.Is(err, tt.wantCode) {
				t.Fatalf("Build = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestLoadFileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minimal.toml")
	content := `
name = "Minimal"

[[node]]
id = "a"
category = "network/vpc"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if d.Outfile != "minimal" {
		t.Errorf("Outfile = %q, want minimal (derived from file name)", d.Outfile)
	}
	if d.Direction != diagram.DirectionTB {
		t.Errorf("Direction = %q, want TB default", d.Direction)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Fatalf("LoadFile = %v, want FILE_NOT_FOUND", err)
	}
}

func TestDuplicateClusterError(t *testing.T) {
	// Duplicate detection depends on the rebuilt index seeing earlier names.
	_, err := Build(Decl{
		Name:     "x",
		Clusters: []ClusterDecl{{Name: "a"}, {Name: "b", Parent: "a"}, {Name: "b"}},
	})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("Build = %v, want INVALID_INPUT", err)
	}
}
