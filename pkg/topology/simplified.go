package topology

import "github.com/gcptools/archdiag/pkg/diagram"

// Simplified returns the high-level overview diagram: external actors,
// four global services, and the two regional deployments reduced to their
// compute, database, and storage anchors.
func Simplified() *diagram.Diagram {
	return &diagram.Diagram{
		Name:      "GCP Infrastructure Overview",
		Outfile:   "gcp_simplified_diagram",
		Direction: diagram.DirectionTB,
		Nodes: []diagram.Node{
			{ID: "users", Label: "Users", Category: diagram.CategoryUsers},
			{ID: "internet", Label: "Internet", Category: diagram.CategoryInternet},
			{ID: "vpc-peering", Label: "VPC Peering", Category: diagram.CategoryVPC},
		},
		Clusters: []diagram.Cluster{
			{
				Name: "Global Services",
				Nodes: []diagram.Node{
					{ID: "dns", Label: "Cloud DNS", Category: diagram.CategoryDNS},
					{ID: "lb", Label: "Global Load Balancer", Category: diagram.CategoryLoadBalancer},
					{ID: "iam", Label: "IAM & Security", Category: diagram.CategoryIAM},
					{ID: "monitoring", Label: "Monitoring & Logging", Category: diagram.CategoryBigQuery},
				},
			},
			{
				Name: "Multi-Region Deployment",
				Clusters: []diagram.Cluster{
					{
						Name: "Primary Region\n(us-central1)",
						Nodes: []diagram.Node{
							{ID: "gke-primary", Label: "GKE Cluster", Category: diagram.CategoryGKE},
							{ID: "sql-primary", Label: "Cloud SQL", Category: diagram.CategoryCloudSQL},
							{ID: "storage-primary", Label: "Cloud Storage", Category: diagram.CategoryCloudStorage},
						},
					},
					{
						Name: "Secondary Region\n(us-east1)",
						Nodes: []diagram.Node{
							{ID: "gke-secondary", Label: "GKE Cluster", Category: diagram.CategoryGKE},
							{ID: "sql-secondary", Label: "Cloud SQL", Category: diagram.CategoryCloudSQL},
							{ID: "storage-secondary", Label: "Cloud Storage", Category: diagram.CategoryCloudStorage},
						},
					},
				},
			},
		},
		Edges: []diagram.Edge{
			{From: "users", To: "internet"},
			{From: "internet", To: "dns"},
			{From: "dns", To: "lb"},
			{From: "lb", To: "gke-primary"},
			{From: "lb", To: "gke-secondary"},
			{From: "gke-primary", To: "sql-primary"},
			{From: "gke-primary", To: "storage-primary"},
			{From: "gke-secondary", To: "sql-secondary"},
			{From: "gke-secondary", To: "storage-secondary"},
			{From: "sql-primary", To: "sql-secondary", Label: "replication"},
			{From: "gke-primary", To: "vpc-peering"},
			{From: "gke-secondary", To: "vpc-peering"},
			{From: "iam", To: "gke-primary"},
			{From: "iam", To: "gke-secondary"},
			{From: "monitoring", To: "gke-primary"},
			{From: "monitoring", To: "gke-secondary"},
		},
	}
}
