package jobs

// Snapshot is an immutable, fully validated view of a jobs file: the jobs in
// input order, the dependency graph built from them, and the computed layer
// assignment. A Snapshot is only produced when validation and layering both
// succeed, so rendering never observes a partially valid state. Callers that
// re-run the pipeline (e.g. watch mode) keep the previous Snapshot when a
// new run fails.
type Snapshot struct {
	// PlanName is the human-readable plan name from the jobs file.
	PlanName string
	// Jobs holds the validated jobs in input order.
	Jobs []Job
	// Graph is the dependency graph over the jobs.
	Graph *DependencyGraph
	// Layers assigns each job ID its zero-based layer.
	Layers LayerAssignment
}

// Commit runs the validation gate and, on success, builds the dependency
// graph and assigns layers, returning the resulting Snapshot. On failure it
// returns every validation error (or the cycle error); no snapshot is
// produced and no graph state leaks out.
func Commit(cfg *JobsConfig, result *ParseResult) (*Snapshot, []error) {
	if errs := ValidateJobs(cfg, result); len(errs) > 0 {
		return nil, errs
	}

	graph := BuildGraph(cfg.Jobs)
	layers, err := AssignLayers(graph)
	if err != nil {
		return nil, []error{err}
	}

	jobsCopy := make([]Job, len(cfg.Jobs))
	copy(jobsCopy, cfg.Jobs)

	return &Snapshot{
		PlanName: cfg.Plan.Name,
		Jobs:     jobsCopy,
		Graph:    graph,
		Layers:   layers,
	}, nil
}

// LoadSnapshot parses a jobs file and commits it in one step.
// Parse failures are returned as a single-element error slice.
func LoadSnapshot(path string) (*Snapshot, []error) {
	result, err := ParseJobsFile(path)
	if err != nil {
		return nil, []error{err}
	}
	return Commit(result.Config, result)
}
