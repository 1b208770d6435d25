package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gcptools/archdiag/pkg/cache"
	"github.com/gcptools/archdiag/pkg/diagram"
	"github.com/gcptools/archdiag/pkg/errors"
	"github.com/gcptools/archdiag/pkg/render"
	"github.com/gcptools/archdiag/pkg/topology"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	outputDir string   // directory artifacts are written to
	formats   []string // output formats: "svg", "png", "pdf"
	noCache   bool     // bypass the artifact cache
}

// generateCommand creates the generate command for rendering built-in
// topologies. With no arguments it renders all of them, which is also what
// the bare root command does.
func (c *CLI) generateCommand() *cobra.Command {
	var formatsStr string
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   "generate [topology...]",
		Short: "Render built-in topologies to image files",
		Long:  `Render the built-in infrastructure topologies (comprehensive, simplified) to image files. With no arguments, all topologies are rendered.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = topology.Names()
			}
			var err error
			opts.formats, err = parseFormats(formatsStr, c.Config.Output.Formats)
			if err != nil {
				return err
			}
			if opts.outputDir == "" {
				opts.outputDir = c.Config.Output.Dir
			}

			diagrams := make([]*diagram.Diagram, 0, len(names))
			for _, name := range names {
				d, err := topology.Get(name)
				if err != nil {
					return err
				}
				diagrams = append(diagrams, d)
			}
			return c.runGenerate(cmd.Context(), diagrams, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "output directory (default from config, else \".\")")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, pdf (comma-separated)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// renderCommand creates the render command for declarative topology files.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   "render <file.toml>",
		Short: "Render a declarative topology file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			opts.formats, err = parseFormats(formatsStr, c.Config.Output.Formats)
			if err != nil {
				return err
			}
			if opts.outputDir == "" {
				opts.outputDir = c.Config.Output.Dir
			}

			d, err := topology.LoadFile(args[0])
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), []*diagram.Diagram{d}, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "output directory (default from config, else \".\")")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, pdf (comma-separated)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// runGenerateAll implements the bare invocation: both built-in topologies,
// default formats, into the working directory.
func (c *CLI) runGenerateAll(ctx context.Context) error {
	printInfo("Generating GCP architecture diagrams...")

	var diagrams []*diagram.Diagram
	for _, name := range topology.Names() {
		d, err := topology.Get(name)
		if err != nil {
			return err
		}
		diagrams = append(diagrams, d)
	}

	opts := generateOpts{
		outputDir: c.Config.Output.Dir,
		formats:   c.Config.Output.Formats,
	}
	if err := c.runGenerate(ctx, diagrams, &opts); err != nil {
		return err
	}

	printNewline()
	printSuccess("Architecture diagrams generated successfully")
	return nil
}

// runGenerate validates and renders each diagram to every requested format.
// Rendering failures propagate unrecovered; there is no partial-success
// handling beyond the files already written.
func (c *CLI) runGenerate(ctx context.Context, diagrams []*diagram.Diagram, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	artifacts := c.newCache(ctx, opts.noCache)
	defer artifacts.Close()
	keyer := c.newKeyer()

	for _, d := range diagrams {
		if err := d.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidTopology, err, "topology %q", d.Name)
		}

		prog := newProgress(logger)
		logger.Debugf("Building %q: %d nodes, %d clusters, %d edges", d.Name, d.NodeCount(), d.ClusterCount(), d.EdgeCount())

		dot := render.ToDOT(d)
		dotHash := cache.Hash([]byte(dot))

		for _, format := range opts.formats {
			outPath := filepath.Join(opts.outputDir, d.Outfile+"."+format)
			cached, err := c.renderArtifact(ctx, artifacts, keyer, dot, dotHash, format, outPath)
			if err != nil {
				return err
			}
			printFile(outPath)
			printStats(d.NodeCount(), d.EdgeCount(), cached)
		}
		prog.done(fmt.Sprintf("Rendered %q", d.Name))
	}
	return nil
}

// renderArtifact produces one output file, consulting the artifact cache
// first. Returns whether the artifact came from cache.
func (c *CLI) renderArtifact(ctx context.Context, artifacts cache.Cache, keyer cache.Keyer, dot, dotHash, format, outPath string) (bool, error) {
	logger := loggerFromContext(ctx)

	key := keyer.ArtifactKey(dotHash, cache.ArtifactKeyOpts{Format: format})
	data, hit, err := artifacts.Get(ctx, key)
	if err != nil {
		logger.Debugf("Cache read failed: %v", err)
		hit = false
	}

	if !hit {
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", filepath.Base(outPath)))
		spinner.Start()
		data, err = render.Render(ctx, dot, format)
		if err != nil {
			spinner.StopWithError("Render failed")
			return false, err
		}
		spinner.Stop()
		if err := artifacts.Set(ctx, key, data, 0); err != nil {
			logger.Debugf("Cache write failed: %v", err)
		}
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, err
		}
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return false, err
	}
	return hit, nil
}

// parseFormats parses the --format flag into a slice of output formats,
// falling back to the configured defaults when empty.
func parseFormats(s string, defaults []string) ([]string, error) {
	formats := defaults
	if s != "" {
		formats = strings.Split(s, ",")
	}
	for _, f := range formats {
		if !render.ValidFormat(f) {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', or 'pdf')", f)
		}
	}
	return formats, nil
}
