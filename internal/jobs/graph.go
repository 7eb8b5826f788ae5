package jobs

// DependencyGraph is a directed graph over job IDs. An edge dep -> job exists
// whenever job declares dep as a dependency. Node display names are held
// separately from the adjacency structure; insertion order is preserved for
// deterministic traversal.
type DependencyGraph struct {
	nodes        []string
	names        map[string]string
	successors   map[string][]string
	predecessors map[string][]string
	edgeSet      map[string]map[string]bool
}

// BuildGraph constructs a dependency graph from validated jobs. One node is
// added per job, and one edge dep -> job per dependency token. Tokens that
// are empty strings are silently skipped; duplicate edges are recorded once.
func BuildGraph(jobList []Job) *DependencyGraph {
	g := newGraph()

	for _, job := range jobList {
		g.addNode(job.ID, job.Name)
	}
	for _, job := range jobList {
		for _, dep := range job.Dependencies {
			if dep == "" {
				continue
			}
			g.addEdge(dep, job.ID)
		}
	}

	return g
}

func newGraph() *DependencyGraph {
	return &DependencyGraph{
		names:        make(map[string]string),
		successors:   make(map[string][]string),
		predecessors: make(map[string][]string),
		edgeSet:      make(map[string]map[string]bool),
	}
}

// addNode registers a node with its display name. Re-adding an existing node
// only updates the name.
func (g *DependencyGraph) addNode(id, name string) {
	if _, exists := g.names[id]; !exists {
		g.nodes = append(g.nodes, id)
	}
	g.names[id] = name
}

// addEdge adds a directed edge from -> to, creating missing endpoints with
// their ID as display name. Duplicate edges are ignored.
func (g *DependencyGraph) addEdge(from, to string) {
	if _, exists := g.names[from]; !exists {
		g.addNode(from, from)
	}
	if _, exists := g.names[to]; !exists {
		g.addNode(to, to)
	}

	if g.edgeSet[from] == nil {
		g.edgeSet[from] = make(map[string]bool)
	}
	if g.edgeSet[from][to] {
		return
	}
	g.edgeSet[from][to] = true

	g.successors[from] = append(g.successors[from], to)
	g.predecessors[to] = append(g.predecessors[to], from)
}

// Nodes returns all node IDs in insertion order.
func (g *DependencyGraph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Name returns the display name for a node, falling back to the ID itself
// for unknown nodes.
func (g *DependencyGraph) Name(id string) string {
	if name, ok := g.names[id]; ok {
		return name
	}
	return id
}

// Successors returns the nodes reachable by one outgoing edge from id.
func (g *DependencyGraph) Successors(id string) []string {
	return g.successors[id]
}

// Predecessors returns the nodes with an edge into id.
func (g *DependencyGraph) Predecessors(id string) []string {
	return g.predecessors[id]
}

// InDegree returns the number of distinct incoming edges for id.
func (g *DependencyGraph) InDegree(id string) int {
	return len(g.predecessors[id])
}

// HasEdge reports whether the directed edge from -> to exists.
func (g *DependencyGraph) HasEdge(from, to string) bool {
	return g.edgeSet[from][to]
}

// NodeCount returns the number of nodes in the graph.
func (g *DependencyGraph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct directed edges in the graph.
func (g *DependencyGraph) EdgeCount() int {
	count := 0
	for _, succs := range g.successors {
		count += len(succs)
	}
	return count
}

// Edge is a directed edge in the dependency graph.
type Edge struct {
	From string
	To   string
}

// Edges returns all distinct edges, ordered by source node insertion order
// and then by edge insertion order.
func (g *DependencyGraph) Edges() []Edge {
	var edges []Edge
	for _, from := range g.nodes {
		for _, to := range g.successors[from] {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	return edges
}
