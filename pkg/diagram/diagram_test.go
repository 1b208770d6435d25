package diagram

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Diagram
		wantErr error
	}{
		{
			name:  "Empty",
			build: func() *Diagram { return &Diagram{Name: "empty"} },
		},
		{
			name: "RootNodesAndEdge",
			build: func() *Diagram {
				return &Diagram{
					Nodes: []Node{{ID: "a", Category: CategoryUsers}, {ID: "b", Category: CategoryInternet}},
					Edges: []Edge{{From: "a", To: "b"}},
				}
			},
		},
		{
			name: "EdgeIntoNestedCluster",
			build: func() *Diagram {
				return &Diagram{
					Nodes: []Node{{ID: "lb", Category: CategoryLoadBalancer}},
					Clusters: []Cluster{{
						Name: "region",
						Clusters: []Cluster{{
							Name:  "compute",
							Nodes: []Node{{ID: "gke", Category: CategoryGKE}},
						}},
					}},
					Edges: []Edge{{From: "lb", To: "gke"}},
				}
			},
		},
		{
			name: "EmptyNodeID",
			build: func() *Diagram {
				return &Diagram{Nodes: []Node{{ID: "", Category: CategoryVPC}}}
			},
			wantErr: ErrInvalidNodeID,
		},
		{
			name: "DuplicateAcrossClusters",
			build: func() *Diagram {
				return &Diagram{
					Nodes: []Node{{ID: "vpc", Category: CategoryVPC}},
					Clusters: []Cluster{{
						Name:  "region",
						Nodes: []Node{{ID: "vpc", Category: CategoryVPC}},
					}},
				}
			},
			wantErr: ErrDuplicateNodeID,
		},
		{
			name: "DanglingEdgeSource",
			build: func() *Diagram {
				return &Diagram{
					Nodes: []Node{{ID: "a", Category: CategoryUsers}},
					Edges: []Edge{{From: "ghost", To: "a"}},
				}
			},
			wantErr: ErrDanglingEdge,
		},
		{
			name: "DanglingEdgeTarget",
			build: func() *Diagram {
				return &Diagram{
					Nodes: []Node{{ID: "a", Category: CategoryUsers}},
					Edges: []Edge{{From: "a", To: "ghost"}},
				}
			},
			wantErr: ErrDanglingEdge,
		},
		{
			name: "UnnamedCluster",
			build: func() *Diagram {
				return &Diagram{Clusters: []Cluster{{Name: ""}}}
			},
			wantErr: ErrInvalidClusterName,
		},
		{
			name: "SelfLoopAllowed",
			build: func() *Diagram {
				return &Diagram{
					Nodes: []Node{{ID: "a", Category: CategoryVPC}},
					Edges: []Edge{{From: "a", To: "a"}},
				}
			},
		},
		{
			name: "DuplicateEdgesAllowed",
			build: func() *Diagram {
				return &Diagram{
					Nodes: []Node{{ID: "a", Category: CategoryVPC}, {ID: "b", Category: CategoryVPC}},
					Edges: []Edge{{From: "a", To: "b"}, {From: "a", To: "b"}},
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAllNodes(t *testing.T) {
	d := &Diagram{
		Nodes: []Node{{ID: "users"}, {ID: "internet"}},
		Clusters: []Cluster{
			{
				Name:  "global",
				Nodes: []Node{{ID: "dns"}},
				Clusters: []Cluster{
					{Name: "inner", Nodes: []Node{{ID: "lb"}}},
				},
			},
			{Name: "region", Nodes: []Node{{ID: "gke"}}},
		},
	}

	nodes := d.AllNodes()
	wantOrder := []string{"users", "internet", "dns", "lb", "gke"}
	if len(nodes) != len(wantOrder) {
		t.Fatalf("len = %d, want %d", len(nodes), len(wantOrder))
	}
	for i, id := range wantOrder {
		if nodes[i].ID != id {
			t.Errorf("nodes[%d] = %s, want %s", i, nodes[i].ID, id)
		}
	}
	if d.NodeCount() != 5 {
		t.Errorf("NodeCount = %d, want 5", d.NodeCount())
	}
	if d.ClusterCount() != 3 {
		t.Errorf("ClusterCount = %d, want 3", d.ClusterCount())
	}
}

func TestFindCluster(t *testing.T) {
	d := &Diagram{
		Clusters: []Cluster{{
			Name: "Primary Region",
			Clusters: []Cluster{
				{Name: "Compute Layer", Nodes: []Node{{ID: "gke"}}},
			},
		}},
	}

	if c := d.FindCluster("Compute Layer"); c == nil || len(c.Nodes) != 1 {
		t.Fatalf("FindCluster(Compute Layer) = %v", c)
	}
	if c := d.FindCluster("missing"); c != nil {
		t.Fatalf("FindCluster(missing) = %v, want nil", c)
	}
}

func TestDisplayLabel(t *testing.T) {
	if got := (Node{ID: "gke", Label: "GKE Cluster"}).DisplayLabel(); got != "GKE Cluster" {
		t.Errorf("DisplayLabel = %q", got)
	}
	if got := (Node{ID: "gke"}).DisplayLabel(); got != "gke" {
		t.Errorf("DisplayLabel = %q, want ID fallback", got)
	}
}

func TestValidCategory(t *testing.T) {
	if !ValidCategory(CategoryGKE) {
		t.Error("CategoryGKE should be valid")
	}
	if ValidCategory(Category("compute/quantum")) {
		t.Error("unknown category should be invalid")
	}
}
