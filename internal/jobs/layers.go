package jobs

// LayerAssignment maps a job ID to its zero-based execution layer: the length
// of the longest dependency chain ending at that job. Every edge u -> v
// satisfies layer[u] < layer[v], and layer 0 is exactly the set of nodes with
// no incoming edges. A +1 offset is applied at render time for display only.
type LayerAssignment map[string]int

// AssignLayers computes the layer of every node via a topological pass.
// Sources get layer 0; every other node gets 1 + max over the layers of its
// direct predecessors. Returns a CycleError if no topological ordering
// exists. Ties within a layer follow node insertion order.
func AssignLayers(g *DependencyGraph) (LayerAssignment, error) {
	layers := make(LayerAssignment, g.NodeCount())
	remaining := make(map[string]int, g.NodeCount())

	var queue []string
	for _, id := range g.Nodes() {
		remaining[id] = g.InDegree(id)
		if remaining[id] == 0 {
			queue = append(queue, id)
		}
	}

	processed := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		processed++

		layers[id] = layerFor(g, layers, id)

		for _, succ := range g.Successors(id) {
			remaining[succ]--
			if remaining[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	if processed < g.NodeCount() {
		return nil, &CycleError{Path: findCycle(g)}
	}

	return layers, nil
}

// layerFor computes the layer of a dequeued node. All predecessors are
// already assigned when the node leaves the queue.
func layerFor(g *DependencyGraph, layers LayerAssignment, id string) int {
	preds := g.Predecessors(id)
	if len(preds) == 0 {
		return 0
	}

	max := 0
	for _, pred := range preds {
		if layers[pred] >= max {
			max = layers[pred] + 1
		}
	}
	return max
}

// MaxLayer returns the highest assigned layer, or -1 for an empty assignment.
func (la LayerAssignment) MaxLayer() int {
	max := -1
	for _, layer := range la {
		if layer > max {
			max = layer
		}
	}
	return max
}

// findCycle locates one concrete cycle in the graph using DFS.
// Returns the node IDs forming the cycle, closed with the starting node.
func findCycle(g *DependencyGraph) []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, id := range g.Nodes() {
		if !visited[id] {
			if cycle := cycleDFS(g, id, visited, recStack, nil); cycle != nil {
				return cycle
			}
		}
	}

	return nil
}

// cycleDFS performs depth-first search for cycle detection.
func cycleDFS(g *DependencyGraph, id string, visited, recStack map[string]bool, path []string) []string {
	visited[id] = true
	recStack[id] = true
	path = append(path, id)

	for _, succ := range g.Successors(id) {
		if !visited[succ] {
			if cycle := cycleDFS(g, succ, visited, recStack, path); cycle != nil {
				return cycle
			}
		} else if recStack[succ] {
			return buildCyclePath(path, succ)
		}
	}

	recStack[id] = false
	return nil
}

// buildCyclePath constructs the cycle path from the DFS path.
func buildCyclePath(path []string, cycleStart string) []string {
	startIdx := -1
	for i, id := range path {
		if id == cycleStart {
			startIdx = i
			break
		}
	}
	if startIdx >= 0 {
		return append(path[startIdx:], cycleStart)
	}
	return append(path, cycleStart)
}
