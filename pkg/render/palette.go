package render

import "github.com/gcptools/archdiag/pkg/diagram"

// style holds the DOT node attributes for one resource category. Fill
// colors follow the GCP product family palette so the rendered boxes read
// like the official architecture icons; external actors stay grey.
type style struct {
	Shape     string
	FillColor string
	FontColor string
	Caption   string // small-caps family caption shown under the label
}

var categoryStyles = map[diagram.Category]style{
	diagram.CategoryUsers:    {Shape: "ellipse", FillColor: "#E8EAED", FontColor: "#202124", Caption: "external"},
	diagram.CategoryInternet: {Shape: "ellipse", FillColor: "#E8EAED", FontColor: "#202124", Caption: "external"},

	diagram.CategoryComputeEngine: {Shape: "box", FillColor: "#4285F4", FontColor: "white", Caption: "Compute Engine"},
	diagram.CategoryGKE:           {Shape: "box", FillColor: "#4285F4", FontColor: "white", Caption: "Kubernetes Engine"},
	diagram.CategoryCloudRun:      {Shape: "box", FillColor: "#4285F4", FontColor: "white", Caption: "Cloud Run"},

	diagram.CategoryCloudSQL:    {Shape: "cylinder", FillColor: "#336791", FontColor: "white", Caption: "Cloud SQL"},
	diagram.CategoryMemorystore: {Shape: "cylinder", FillColor: "#DC382D", FontColor: "white", Caption: "Memorystore"},

	diagram.CategoryVPC:          {Shape: "box", FillColor: "#34A853", FontColor: "white", Caption: "VPC"},
	diagram.CategoryLoadBalancer: {Shape: "box", FillColor: "#34A853", FontColor: "white", Caption: "Load Balancing"},
	diagram.CategoryDNS:          {Shape: "box", FillColor: "#34A853", FontColor: "white", Caption: "Cloud DNS"},
	diagram.CategoryFirewall:     {Shape: "box", FillColor: "#EA4335", FontColor: "white", Caption: "Firewall"},

	diagram.CategoryCloudStorage: {Shape: "folder", FillColor: "#FBBC05", FontColor: "#202124", Caption: "Cloud Storage"},
	diagram.CategoryFilestore:    {Shape: "folder", FillColor: "#FBBC05", FontColor: "#202124", Caption: "Filestore"},

	diagram.CategoryIAM: {Shape: "box", FillColor: "#9AA0A6", FontColor: "white", Caption: "IAM"},
	diagram.CategoryKMS: {Shape: "box", FillColor: "#9AA0A6", FontColor: "white", Caption: "KMS"},

	diagram.CategoryBigQuery:         {Shape: "box", FillColor: "#669DF6", FontColor: "white", Caption: "BigQuery"},
	diagram.CategoryArtifactRegistry: {Shape: "box", FillColor: "#669DF6", FontColor: "white", Caption: "Artifact Registry"},
}

// defaultStyle is used for categories without an explicit entry, so a
// diagram with an unknown category still renders rather than failing.
var defaultStyle = style{Shape: "box", FillColor: "white", FontColor: "#202124"}

// styleFor returns the style for a category.
func styleFor(c diagram.Category) style {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return defaultStyle
}
