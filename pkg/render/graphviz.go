package render

import (
	"bytes"
	"context"

	"github.com/goccy/go-graphviz"

	"github.com/gcptools/archdiag/pkg/errors"
)

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz. Graphviz performs
// all layout work; failures (bad DOT, rasterizer errors) are wrapped with
// a RENDER_FAILED code and propagate to the caller unrecovered.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

// Render produces the requested format from a DOT string. Supported
// formats: svg, png, pdf (pdf goes through SVG plus rsvg-convert).
func Render(ctx context.Context, dot, format string) ([]byte, error) {
	switch format {
	case "svg":
		return RenderSVG(ctx, dot)
	case "png":
		return RenderPNG(ctx, dot)
	case "pdf":
		svg, err := RenderSVG(ctx, dot)
		if err != nil {
			return nil, err
		}
		return ToPDF(svg)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}

// Formats returns the supported output formats.
func Formats() []string { return []string{"svg", "png", "pdf"} }

// ValidFormat reports whether format is supported.
func ValidFormat(format string) bool {
	for _, f := range Formats() {
		if f == format {
			return true
		}
	}
	return false
}
