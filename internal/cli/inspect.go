package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gcptools/archdiag/pkg/diagram"
	"github.com/gcptools/archdiag/pkg/topology"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command for browsing a topology interactively.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [topology]",
		Short: "Browse a topology interactively",
		Long: `Open an interactive browser over the cluster tree of a topology.
Defaults to the comprehensive topology when no name is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := topology.NameComprehensive
			if len(args) == 1 {
				name = args[0]
			}
			d, err := topology.Get(name)
			if err != nil {
				return err
			}
			if err := d.Validate(); err != nil {
				return err
			}

			m := NewTreeModel(d)
			p := tea.NewProgram(m)
			if _, err := p.Run(); err != nil {
				return err
			}
			return nil
		},
	}
	return cmd
}

// =============================================================================
// TreeModel - Interactive topology tree browser
// =============================================================================

// treeLine is one rendered row of the flattened cluster tree.
type treeLine struct {
	Text     string
	Category string
	IsNode   bool
}

// TreeModel is the bubbletea model for browsing a topology tree.
type TreeModel struct {
	Title  string
	Lines  []treeLine
	Edges  int
	Cursor int
	Height int
	Offset int
}

// NewTreeModel creates a tree model over a diagram.
func NewTreeModel(d *diagram.Diagram) TreeModel {
	return TreeModel{
		Title:  d.Name,
		Lines:  flattenTree(d),
		Edges:  d.EdgeCount(),
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func flattenTree(d *diagram.Diagram) []treeLine {
	var lines []treeLine
	for _, n := range d.Nodes {
		lines = append(lines, treeLine{
			Text:     flattenLabel(n.DisplayLabel()),
			Category: string(n.Category),
			IsNode:   true,
		})
	}
	for i := range d.Clusters {
		lines = appendClusterLines(lines, &d.Clusters[i], 0)
	}
	return lines
}

func appendClusterLines(lines []treeLine, cl *diagram.Cluster, depth int) []treeLine {
	indent := strings.Repeat("  ", depth)
	lines = append(lines, treeLine{Text: indent + flattenLabel(cl.Name)})
	for _, n := range cl.Nodes {
		lines = append(lines, treeLine{
			Text:     indent + "  " + flattenLabel(n.DisplayLabel()),
			Category: string(n.Category),
			IsNode:   true,
		})
	}
	for i := range cl.Clusters {
		lines = appendClusterLines(lines, &cl.Clusters[i], depth+1)
	}
	return lines
}

func (m TreeModel) Init() tea.Cmd {
	return nil
}

func (m TreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Lines)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TreeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Lines) {
		end = len(m.Lines)
	}

	for i := m.Offset; i < end; i++ {
		line := m.Lines[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(cursor + line.Text))
			if line.IsNode && line.Category != "" {
				b.WriteString("  " + listDimStyle.Render(line.Category))
			}
		} else if line.IsNode {
			b.WriteString(listNormalStyle.Render(cursor + line.Text))
			if line.Category != "" {
				b.WriteString("  " + listDimStyle.Render(line.Category))
			}
		} else {
			b.WriteString(StyleDim.Render(cursor) + StyleTitle.Render(line.Text))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  %d edges", m.Cursor+1, len(m.Lines), m.Edges)))

	return b.String()
}
