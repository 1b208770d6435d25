// Package render turns diagram descriptions into image artifacts.
//
// The pipeline is two steps with no state in between:
//
//	dot := render.ToDOT(d)                    // description → DOT text
//	png, err := render.RenderPNG(ctx, dot)    // DOT → image bytes
//
// [ToDOT] emits a digraph with nested cluster subgraphs and per-category
// node styling from the palette. Layout and rasterization are delegated
// entirely to Graphviz via goccy/go-graphviz; this package performs no
// graph computation of its own. PDF output additionally shells out to
// rsvg-convert ([ToPDF]).
//
// Rendering failures are not caught or retried here: they carry a
// RENDER_FAILED error code and propagate to the caller.
package render
