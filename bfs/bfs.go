package bfs

import (
	"fmt"

	"github.com/katalvlaran/orthodraw/core"
)

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// BFS runs breadth-first search on g starting from startID, applying any
// number of functional Options. Returns ErrGraphNil, ErrStartVertexNotFound,
// ErrOptionViolation, or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &Result{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	visited := make(map[string]bool, n)
	queue := make([]queueItem, 0, n)

	enqueue := func(id string, d int, parent string) {
		visited[id] = true
		res.Depth[id] = d
		if parent != "" {
			res.Parent[id] = parent
		}
		queue = append(queue, queueItem{id: id, depth: d, parent: parent})
	}
	enqueue(startID, 0, "")

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, item.id)
		if err := o.OnVisit(item.id, item.depth); err != nil {
			return res, fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		neighbors, err := g.Neighbors(item.id)
		if err != nil {
			return res, fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		nextDepth := item.depth + 1
		if o.MaxDepth > 0 && nextDepth > o.MaxDepth {
			continue
		}
		for _, nbr := range neighbors {
			if !visited[nbr] {
				enqueue(nbr, nextDepth, item.id)
			}
		}
	}

	return res, nil
}

// ConnectedComponents partitions the vertices of g into connected
// components, each a slice of vertex IDs in BFS visit order. Useful as a
// pre-embedding diagnostic: orthodraw.Embed does not itself require a
// connected input graph, but a disconnected graph usually indicates a
// construction mistake.
func ConnectedComponents(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool)
	var components [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			seen[id] = true
		}
		components = append(components, res.Order)
	}

	return components, nil
}
