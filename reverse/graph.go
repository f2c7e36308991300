package reverse

import "errors"

// ErrGraphMismatch is the panic value raised when two Nodes from different
// Graphs are combined.
var ErrGraphMismatch = errors.New("reverse: operands belong to different graphs")

// edge records that the node it hangs off contributed to child with the
// given local partial derivative.
type edge struct {
	weight float64
	child  int
}

type node struct {
	val      float64
	children []edge
	frozen   bool // Constant: no edges recorded, gradient pinned to 0.
	grad     float64
	hasGrad  bool
}

// Graph is an arena of computation nodes. Nodes are only ever appended, and
// an operation's result is always allocated after its operands, so the graph
// is acyclic by construction. Memory grows with the number of operations
// performed; ZeroGrad resets variables but does not reclaim intermediate
// nodes, so long-running callers should build each computation in a fresh
// Graph or accept the arena growth.
type Graph struct {
	nodes []node
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph { return &Graph{} }

// Len returns the number of nodes allocated in the arena.
func (g *Graph) Len() int { return len(g.nodes) }

func (g *Graph) alloc(val float64, frozen bool) Node {
	g.nodes = append(g.nodes, node{val: val, frozen: frozen, hasGrad: frozen})
	return Node{g: g, id: len(g.nodes) - 1}
}

// Var allocates a leaf variable. A fresh variable with no dependents has
// gradient 1, the derivative of x with respect to itself.
func (g *Graph) Var(val float64) Node { return g.alloc(val, false) }

// Constant allocates a frozen constant node. Edge registration on a constant
// is silently dropped and its gradient is always 0.
func (g *Graph) Constant(val float64) Node { return g.alloc(val, true) }

// FromSlice allocates one leaf variable per element of vals.
func (g *Graph) FromSlice(vals []float64) ([]Node, error) {
	if len(vals) == 0 {
		return nil, errors.New("reverse: FromSlice: empty input")
	}
	nodes := make([]Node, len(vals))
	for i, v := range vals {
		nodes[i] = g.Var(v)
	}
	return nodes, nil
}

// addChild records an edge from parent to child unless parent is frozen.
func (g *Graph) addChild(parent int, weight float64, child int) {
	nd := &g.nodes[parent]
	if nd.frozen {
		return
	}
	nd.children = append(nd.children, edge{weight: weight, child: child})
}

// ZeroGrad reverts the given nodes to fresh leaf variables: recorded edges
// are discarded and the gradient cache is invalidated, so the nodes can seed
// a new computation. Frozen constants are left untouched; a constant never
// becomes a variable.
func (g *Graph) ZeroGrad(nodes ...Node) {
	for _, n := range nodes {
		if n.g != g {
			panic(ErrGraphMismatch)
		}
		nd := &g.nodes[n.id]
		if nd.frozen {
			continue
		}
		nd.children = nil
		nd.grad, nd.hasGrad = 0, false
	}
}
