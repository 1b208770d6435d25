package topology

import "github.com/gcptools/archdiag/pkg/diagram"

// Comprehensive returns the full multi-region GCP infrastructure diagram:
// external actors, global services, two symmetric regional deployments,
// cross-region connectivity, and security controls. Every node and edge is
// a fixed literal; the two region clusters differ only in identifiers and
// display labels.
func Comprehensive() *diagram.Diagram {
	return &diagram.Diagram{
		Name:      "Terraform GCP Multi-Region Infrastructure",
		Outfile:   "gcp_architecture_diagram",
		Direction: diagram.DirectionTB,
		Nodes: []diagram.Node{
			{ID: "users", Label: "Users", Category: diagram.CategoryUsers},
			{ID: "internet", Label: "Internet", Category: diagram.CategoryInternet},
		},
		Clusters: []diagram.Cluster{
			{
				Name: "Global Resources",
				Nodes: []diagram.Node{
					{ID: "dns", Label: "Cloud DNS", Category: diagram.CategoryDNS},
					{ID: "global-lb", Label: "Global Load Balancer", Category: diagram.CategoryLoadBalancer},
					{ID: "iam", Label: "IAM & Service Accounts", Category: diagram.CategoryIAM},
					{ID: "kms", Label: "Cloud KMS", Category: diagram.CategoryKMS},
					{ID: "monitoring", Label: "Cloud Monitoring", Category: diagram.CategoryBigQuery},
					{ID: "registry", Label: "Artifact Registry", Category: diagram.CategoryArtifactRegistry},
				},
			},
			{
				Name: "Primary Region (us-central1)",
				Clusters: []diagram.Cluster{
					{
						Name: "VPC Network",
						Nodes: []diagram.Node{
							{ID: "vpc-primary", Label: "VPC", Category: diagram.CategoryVPC},
							{ID: "firewall-primary", Label: "Firewall Rules", Category: diagram.CategoryFirewall},
						},
						Clusters: []diagram.Cluster{
							{
								Name: "Subnets",
								Nodes: []diagram.Node{
									{ID: "web-subnet-primary", Label: "Web Subnet", Category: diagram.CategoryVPC},
									{ID: "app-subnet-primary", Label: "App Subnet", Category: diagram.CategoryVPC},
									{ID: "db-subnet-primary", Label: "DB Subnet", Category: diagram.CategoryVPC},
									{ID: "gke-subnet-primary", Label: "GKE Subnet", Category: diagram.CategoryVPC},
								},
							},
							{
								Name: "Compute Layer",
								Nodes: []diagram.Node{
									{ID: "gke-primary", Label: "GKE Cluster", Category: diagram.CategoryGKE},
									{ID: "run-primary", Label: "Cloud Run", Category: diagram.CategoryCloudRun},
									{ID: "compute-primary", Label: "Compute Engine", Category: diagram.CategoryComputeEngine},
								},
							},
							{
								Name: "Database Layer",
								Nodes: []diagram.Node{
									{ID: "sql-primary", Label: "Cloud SQL\n(PostgreSQL)", Category: diagram.CategoryCloudSQL},
									{ID: "redis-primary", Label: "Redis Cache", Category: diagram.CategoryMemorystore},
								},
							},
							{
								Name: "Storage Layer",
								Nodes: []diagram.Node{
									{ID: "storage-primary", Label: "Cloud Storage", Category: diagram.CategoryCloudStorage},
									{ID: "filestore-primary", Label: "Filestore", Category: diagram.CategoryFilestore},
								},
							},
						},
					},
				},
			},
			{
				Name: "Secondary Region (us-east1)",
				Clusters: []diagram.Cluster{
					{
						Name: "VPC Network",
						Nodes: []diagram.Node{
							{ID: "vpc-secondary", Label: "VPC", Category: diagram.CategoryVPC},
							{ID: "firewall-secondary", Label: "Firewall Rules", Category: diagram.CategoryFirewall},
						},
						Clusters: []diagram.Cluster{
							{
								Name: "Subnets",
								Nodes: []diagram.Node{
									{ID: "web-subnet-secondary", Label: "Web Subnet", Category: diagram.CategoryVPC},
									{ID: "app-subnet-secondary", Label: "App Subnet", Category: diagram.CategoryVPC},
									{ID: "db-subnet-secondary", Label: "DB Subnet", Category: diagram.CategoryVPC},
									{ID: "gke-subnet-secondary", Label: "GKE Subnet", Category: diagram.CategoryVPC},
								},
							},
							{
								Name: "Compute Layer",
								Nodes: []diagram.Node{
									{ID: "gke-secondary", Label: "GKE Cluster", Category: diagram.CategoryGKE},
									{ID: "run-secondary", Label: "Cloud Run", Category: diagram.CategoryCloudRun},
									{ID: "compute-secondary", Label: "Compute Engine", Category: diagram.CategoryComputeEngine},
								},
							},
							{
								Name: "Database Layer",
								Nodes: []diagram.Node{
									{ID: "sql-secondary", Label: "Cloud SQL\n(PostgreSQL)", Category: diagram.CategoryCloudSQL},
									{ID: "redis-secondary", Label: "Redis Cache", Category: diagram.CategoryMemorystore},
								},
							},
							{
								Name: "Storage Layer",
								Nodes: []diagram.Node{
									{ID: "storage-secondary", Label: "Cloud Storage", Category: diagram.CategoryCloudStorage},
									{ID: "filestore-secondary", Label: "Filestore", Category: diagram.CategoryFilestore},
								},
							},
						},
					},
				},
			},
			{
				Name: "Cross-Region Connectivity",
				Nodes: []diagram.Node{
					{ID: "vpc-peering", Label: "VPC Peering", Category: diagram.CategoryVPC},
					{ID: "vpn-tunnel", Label: "VPN Tunnel", Category: diagram.CategoryVPC},
				},
			},
			{
				Name: "Security & Compliance",
				Nodes: []diagram.Node{
					{ID: "vpc-sc", Label: "VPC Service Controls", Category: diagram.CategoryVPC},
					{ID: "binary-auth", Label: "Binary Authorization", Category: diagram.CategoryIAM},
					{ID: "workload-identity", Label: "Workload Identity", Category: diagram.CategoryIAM},
				},
			},
		},
		Edges: []diagram.Edge{
			// Inbound traffic
			{From: "users", To: "internet"},
			{From: "internet", To: "dns"},
			{From: "dns", To: "global-lb"},

			// Global load balancer to regional compute
			{From: "global-lb", To: "gke-primary"},
			{From: "global-lb", To: "gke-secondary"},
			{From: "global-lb", To: "run-primary"},
			{From: "global-lb", To: "run-secondary"},

			// Primary region internals
			{From: "gke-primary", To: "sql-primary"},
			{From: "gke-primary", To: "redis-primary"},
			{From: "gke-primary", To: "storage-primary"},
			{From: "run-primary", To: "sql-primary"},
			{From: "run-primary", To: "redis-primary"},
			{From: "compute-primary", To: "sql-primary"},
			{From: "compute-primary", To: "storage-primary"},

			// Secondary region internals
			{From: "gke-secondary", To: "sql-secondary"},
			{From: "gke-secondary", To: "redis-secondary"},
			{From: "gke-secondary", To: "storage-secondary"},
			{From: "run-secondary", To: "sql-secondary"},
			{From: "run-secondary", To: "redis-secondary"},
			{From: "compute-secondary", To: "sql-secondary"},
			{From: "compute-secondary", To: "storage-secondary"},

			// Cross-region connectivity
			{From: "vpc-primary", To: "vpc-peering"},
			{From: "vpc-secondary", To: "vpc-peering"},
			{From: "vpc-primary", To: "vpn-tunnel"},
			{From: "vpc-secondary", To: "vpn-tunnel"},

			// Database replication
			{From: "sql-primary", To: "sql-secondary", Label: "replication"},

			// IAM and key management
			{From: "iam", To: "gke-primary"},
			{From: "iam", To: "gke-secondary"},
			{From: "iam", To: "run-primary"},
			{From: "iam", To: "run-secondary"},
			{From: "kms", To: "sql-primary"},
			{From: "kms", To: "sql-secondary"},
			{From: "kms", To: "storage-primary"},
			{From: "kms", To: "storage-secondary"},

			// Monitoring
			{From: "monitoring", To: "gke-primary"},
			{From: "monitoring", To: "gke-secondary"},
			{From: "monitoring", To: "sql-primary"},
			{From: "monitoring", To: "sql-secondary"},

			// Container image distribution
			{From: "registry", To: "gke-primary"},
			{From: "registry", To: "gke-secondary"},
			{From: "registry", To: "run-primary"},
			{From: "registry", To: "run-secondary"},

			// Security controls
			{From: "vpc-sc", To: "vpc-primary"},
			{From: "vpc-sc", To: "vpc-secondary"},
			{From: "binary-auth", To: "gke-primary"},
			{From: "binary-auth", To: "gke-secondary"},
			{From: "workload-identity", To: "gke-primary"},
			{From: "workload-identity", To: "gke-secondary"},
		},
	}
}
