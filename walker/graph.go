package walker

import "fmt"

// Graph is an immutable left/right graph with successors resolved to dense
// indices. It is safe for concurrent use by any number of walkers.
type Graph struct {
	ids   []string
	index map[string]int
	left  []int
	right []int
}

// BuildGraph resolves every node's Left/Right identifiers to indices once.
// Node order is preserved: nodes[i] becomes index i.
//
// Returns ErrEmptyGraph, ErrEmptyNodeID, ErrDuplicateNode or
// ErrDanglingReference; on error no graph is returned.
//
// Complexity: O(n) time and memory.
func BuildGraph(nodes []Node) (*Graph, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	g := &Graph{
		ids:   make([]string, len(nodes)),
		index: make(map[string]int, len(nodes)),
		left:  make([]int, len(nodes)),
		right: make([]int, len(nodes)),
	}
	for i, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("BuildGraph: nodes[%d]: %w", i, ErrEmptyNodeID)
		}
		if prev, dup := g.index[n.ID]; dup {
			return nil, fmt.Errorf("BuildGraph: %q at %d and %d: %w", n.ID, prev, i, ErrDuplicateNode)
		}
		g.index[n.ID] = i
		g.ids[i] = n.ID
	}

	for i, n := range nodes {
		l, ok := g.index[n.Left]
		if !ok {
			return nil, fmt.Errorf("BuildGraph: %q left → %q: %w", n.ID, n.Left, ErrDanglingReference)
		}
		r, ok := g.index[n.Right]
		if !ok {
			return nil, fmt.Errorf("BuildGraph: %q right → %q: %w", n.ID, n.Right, ErrDanglingReference)
		}
		g.left[i], g.right[i] = l, r
	}

	return g, nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.ids) }

// Index returns the dense index of id.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// ID returns the identifier of node i. i must be in [0, Len()).
func (g *Graph) ID(i int) string { return g.ids[i] }

// Next returns the successor of node i along direction d.
func (g *Graph) Next(i int, d Direction) int {
	if d == Right {
		return g.right[i]
	}

	return g.left[i]
}

// Select returns, in index order, every node whose ID satisfies pred.
func (g *Graph) Select(pred func(id string) bool) []int {
	var out []int
	for i, id := range g.ids {
		if pred(id) {
			out = append(out, i)
		}
	}

	return out
}

// Match lifts an ID predicate to the index predicate walks expect.
func (g *Graph) Match(pred func(id string) bool) func(node int) bool {
	return func(node int) bool {
		return pred(g.ids[node])
	}
}

// Is returns an index predicate that holds only at the node named id.
// If id is not in the graph the predicate never holds.
func (g *Graph) Is(id string) func(node int) bool {
	target, ok := g.index[id]
	return func(node int) bool {
		return ok && node == target
	}
}
