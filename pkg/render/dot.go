package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gcptools/archdiag/pkg/diagram"
)

// ToDOT converts a diagram to Graphviz DOT. Clusters become nested
// "subgraph cluster_N" blocks so Graphviz draws containment boxes; node
// styling comes from the category palette. The resulting DOT string can be
// rendered with [RenderSVG] or [RenderPNG].
func ToDOT(d *diagram.Diagram) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", d.Name)
	buf.WriteString("  labelloc=\"t\";\n")
	buf.WriteString("  fontsize=28;\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", direction(d))
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  compound=true;\n")
	buf.WriteString("  node [style=\"rounded,filled\", fontsize=16, margin=\"0.25,0.15\"];\n")
	buf.WriteString("  edge [color=\"#5F6368\", arrowsize=0.8];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for _, n := range d.Nodes {
		writeNode(&buf, n, 1)
	}

	seq := 0
	for i := range d.Clusters {
		writeCluster(&buf, &d.Clusters[i], 1, &seq)
	}

	buf.WriteString("\n")
	for _, e := range d.Edges {
		attrs := edgeAttrs(e)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func direction(d *diagram.Diagram) string {
	if d.Direction == diagram.DirectionLR {
		return "LR"
	}
	return "TB"
}

func writeCluster(buf *bytes.Buffer, c *diagram.Cluster, depth int, seq *int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(buf, "%ssubgraph cluster_%d {\n", indent, *seq)
	*seq++
	fmt.Fprintf(buf, "%s  label=%q;\n", indent, c.Name)
	fmt.Fprintf(buf, "%s  style=\"rounded\";\n", indent)
	fmt.Fprintf(buf, "%s  color=\"#DADCE0\";\n", indent)
	fmt.Fprintf(buf, "%s  fontsize=18;\n", indent)

	for _, n := range c.Nodes {
		writeNode(buf, n, depth+1)
	}
	for i := range c.Clusters {
		writeCluster(buf, &c.Clusters[i], depth+1, seq)
	}
	fmt.Fprintf(buf, "%s}\n", indent)
}

func writeNode(buf *bytes.Buffer, n diagram.Node, depth int) {
	s := styleFor(n.Category)
	label := n.DisplayLabel()
	if s.Caption != "" && s.Caption != label {
		label += "\n" + s.Caption
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(buf, "%s%q [label=%q, shape=%s, fillcolor=%q, fontcolor=%q];\n",
		indent, n.ID, label, s.Shape, s.FillColor, s.FontColor)
}

func edgeAttrs(e diagram.Edge) []string {
	var attrs []string
	if e.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
	}
	if e.Style != "" {
		attrs = append(attrs, fmt.Sprintf("style=%q", e.Style))
	}
	return attrs
}
