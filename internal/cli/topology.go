package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gcptools/archdiag/pkg/diagram"
	"github.com/gcptools/archdiag/pkg/topology"
)

// topologyCommand creates the topology inspection command group.
func (c *CLI) topologyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topology",
		Short: "Inspect built-in topologies",
	}

	cmd.AddCommand(c.topologyListCommand())
	cmd.AddCommand(c.topologyShowCommand())

	return cmd
}

// topologyListCommand creates the "topology list" subcommand.
func (c *CLI) topologyListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in topologies",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range topology.Names() {
				d, err := topology.Get(name)
				if err != nil {
					return err
				}
				printKeyValue(name, d.Name)
				printDetail("%d nodes · %d clusters · %d edges → %s.png", d.NodeCount(), d.ClusterCount(), d.EdgeCount(), d.Outfile)
			}
			return nil
		},
	}
}

// topologyShowCommand creates the "topology show" subcommand.
func (c *CLI) topologyShowCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a topology's structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := topology.Get(args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return diagram.WriteDiagram(d, os.Stdout)
			}

			fmt.Println(StyleTitle.Render(d.Name))
			printStats(d.NodeCount(), d.EdgeCount(), false)
			printNewline()

			for _, n := range d.Nodes {
				printNodeLine(n, 0)
			}
			for i := range d.Clusters {
				printClusterTree(&d.Clusters[i], 0)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the node-link JSON format")
	return cmd
}

// printClusterTree prints a cluster and its contents with indentation.
func printClusterTree(c *diagram.Cluster, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Println(indent + StyleTitle.Render(flattenLabel(c.Name)))
	for _, n := range c.Nodes {
		printNodeLine(n, depth+1)
	}
	for i := range c.Clusters {
		printClusterTree(&c.Clusters[i], depth+1)
	}
}

// printNodeLine prints one node with its category.
func printNodeLine(n diagram.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Println(indent + StyleValue.Render(flattenLabel(n.DisplayLabel())) + " " + StyleDim.Render("["+string(n.Category)+"]"))
}

// flattenLabel replaces label newlines for single-line terminal output.
func flattenLabel(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
