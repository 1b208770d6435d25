package cli

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gcptools/archdiag/pkg/diagram"
	pkgerrors "github.com/gcptools/archdiag/pkg/errors"
	"github.com/gcptools/archdiag/pkg/render"
	"github.com/gcptools/archdiag/pkg/topology"
)

// serveCommand creates the serve command for previewing diagrams in a browser.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve diagrams over HTTP for browser preview",
		Long: `Start a local HTTP server that renders the built-in topologies
on demand. Open the printed address in a browser to view them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Serve.Addr
			}
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to config)")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	r := chi.NewRouter()
	r.Use(c.requestID)
	r.Use(middleware.Recoverer)

	r.Get("/", c.handleIndex)
	r.Get("/diagrams/{name}.svg", c.handleDiagramSVG)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	printInfo("Serving diagrams at http://%s", displayAddr(addr))
	printDetail("Press Ctrl+C to stop")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving diagrams: %w", err)
	}
}

// requestID tags each request with a UUID for log correlation.
func (c *CLI) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		c.Logger.Debug("request", "id", id, "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<title>archdiag</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #202124; }
h1 { font-size: 1.4rem; }
li { margin: 0.4rem 0; }
a { color: #4285F4; }
</style>
</head>
<body>
<h1>Architecture diagrams</h1>
<ul>
{{range .}}<li><a href="/diagrams/{{.Name}}.svg">{{.Title}}</a> ({{.Nodes}} nodes, {{.Edges}} edges)</li>
{{end}}</ul>
</body>
</html>
`))

type indexEntry struct {
	Name  string
	Title string
	Nodes int
	Edges int
}

func (c *CLI) handleIndex(w http.ResponseWriter, r *http.Request) {
	entries := make([]indexEntry, 0, len(topology.Names()))
	for _, name := range topology.Names() {
		d, err := topology.Get(name)
		if err != nil {
			continue
		}
		entries = append(entries, indexEntry{
			Name:  name,
			Title: d.Name,
			Nodes: d.NodeCount(),
			Edges: d.EdgeCount(),
		})
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, entries); err != nil {
		c.Logger.Error("rendering index", "error", err)
	}
}

func (c *CLI) handleDiagramSVG(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	d, err := topology.Get(name)
	if err != nil {
		http.Error(w, pkgerrors.UserMessage(err), http.StatusNotFound)
		return
	}
	svg, err := c.renderSVG(r.Context(), d)
	if err != nil {
		c.Logger.Error("rendering diagram", "topology", name, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

func (c *CLI) renderSVG(ctx context.Context, d *diagram.Diagram) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return render.RenderSVG(ctx, render.ToDOT(d))
}

// displayAddr turns a bare ":port" listen address into something clickable.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
