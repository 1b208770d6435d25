package diagram

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func sampleDiagram() *Diagram {
	return &Diagram{
		Name:      "Sample",
		Outfile:   "sample",
		Direction: DirectionTB,
		Nodes:     []Node{{ID: "users", Label: "Users", Category: CategoryUsers}},
		Clusters: []Cluster{{
			Name:  "Global",
			Nodes: []Node{{ID: "dns", Label: "Cloud DNS", Category: CategoryDNS}},
			Clusters: []Cluster{{
				Name:  "Inner",
				Nodes: []Node{{ID: "lb", Label: "Load Balancer", Category: CategoryLoadBalancer}},
			}},
		}},
		Edges: []Edge{
			{From: "users", To: "dns"},
			{From: "dns", To: "lb", Label: "routes", Style: "dashed"},
		},
	}
}

func TestDiagramRoundTrip(t *testing.T) {
	orig := sampleDiagram()

	data, err := MarshalDiagram(orig)
	if err != nil {
		t.Fatalf("MarshalDiagram: %v", err)
	}

	got, err := UnmarshalDiagram(data)
	if err != nil {
		t.Fatalf("UnmarshalDiagram: %v", err)
	}

	if !reflect.DeepEqual(orig, got) {
		t.Errorf("round trip mismatch:\norig: %+v\ngot:  %+v", orig, got)
	}
}

func TestDiagramFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")

	if err := WriteDiagramFile(sampleDiagram(), path); err != nil {
		t.Fatalf("WriteDiagramFile: %v", err)
	}

	got, err := ReadDiagramFile(path)
	if err != nil {
		t.Fatalf("ReadDiagramFile: %v", err)
	}
	if got.NodeCount() != 3 || got.EdgeCount() != 2 {
		t.Errorf("got %d nodes, %d edges; want 3, 2", got.NodeCount(), got.EdgeCount())
	}
	if got.FindCluster("Inner") == nil {
		t.Error("nested cluster lost in round trip")
	}
}

func TestUnmarshalRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "DanglingEdge",
			input:   `{"name":"x","nodes":[{"id":"a","category":"network/vpc"}],"edges":[{"from":"a","to":"ghost"}]}`,
			wantErr: ErrDanglingEdge,
		},
		{
			name:    "DuplicateNode",
			input:   `{"name":"x","nodes":[{"id":"a","category":"network/vpc"},{"id":"a","category":"network/vpc"}],"edges":[]}`,
			wantErr: ErrDuplicateNodeID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalDiagram([]byte(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("UnmarshalDiagram = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnmarshalBadJSON(t *testing.T) {
	if _, err := UnmarshalDiagram([]byte("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
}
