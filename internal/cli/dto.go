// Package cli implements the orthodraw command-line driver: build a
// topology, embed it, and inspect the result, each as a cobra subcommand.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/orthodraw/core"
)

// graphDoc is the on-disk JSON representation of a core.Graph: core.Graph
// itself has unexported storage fields, so build/embed/inspect exchange
// this flattened view instead of marshaling the store directly.
type graphDoc struct {
	RunID     string              `json:"run_id,omitempty"`
	Vertices  []string            `json:"vertices"`
	Edges     [][2]string         `json:"edges"`
	Order     []string            `json:"order,omitempty"`
	Positions map[string][3]int   `json:"positions,omitempty"`
	Routes    map[string][][3]int `json:"routes,omitempty"`
}

// toGraph rebuilds a core.Graph from a graphDoc's vertices and edges.
// Positions and Routes are not restored: Embed recomputes them.
func (d *graphDoc) toGraph() (*core.Graph, error) {
	g := core.NewGraph()
	for _, id := range d.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("AddVertex(%s): %w", id, err)
		}
	}
	for _, e := range d.Edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("AddEdge(%s-%s): %w", e[0], e[1], err)
		}
	}

	return g, nil
}

// fromGraph flattens g's vertices and edges into a graphDoc, optionally
// including each vertex's Position and each edge's Route when present.
func fromGraph(g *core.Graph) graphDoc {
	doc := graphDoc{
		Vertices: g.Vertices(),
		Edges:    make([][2]string, 0, g.EdgeCount()),
	}

	hasPositions := false
	positions := make(map[string][3]int, len(doc.Vertices))
	for _, id := range doc.Vertices {
		if pos, ok := g.Position(id); ok {
			positions[id] = pos
			hasPositions = true
		}
	}
	if hasPositions {
		doc.Positions = positions
	}

	routes := make(map[string][][3]int)
	for _, e := range g.Edges() {
		u, v := e.Arcs[0].Start, e.Arcs[0].End
		doc.Edges = append(doc.Edges, [2]string{u, v})
		if len(e.Route) > 0 {
			routes[u+"-"+v] = e.Route
		}
	}
	if len(routes) > 0 {
		doc.Routes = routes
	}

	return doc
}

func readGraphDoc(path string) (graphDoc, error) {
	var doc graphDoc
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parse %s: %w", path, err)
	}

	return doc, nil
}

func writeGraphDoc(path string, doc graphDoc) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal graph: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
