package jobs

import "fmt"

// InvalidDependencyReport maps a job ID to the ordered list of its dependency
// tokens that do not correspond to any known job ID. An empty report means
// every dependency of every job is valid.
type InvalidDependencyReport map[string][]string

// ValidateJobs validates a parsed jobs config for structural correctness.
// It checks required fields, duplicate job IDs, and dependency references.
// Returns a slice of errors, empty if valid. A non-empty result is a hard
// gate: callers must not build a graph from an invalid config.
func ValidateJobs(cfg *JobsConfig, result *ParseResult) []error {
	var errs []error

	errs = append(errs, validateRequiredFields(cfg, result)...)
	errs = append(errs, validateJobUniqueness(cfg, result)...)
	errs = append(errs, validateDependencies(cfg, result)...)

	return errs
}

// validateRequiredFields checks that all required fields are present.
func validateRequiredFields(cfg *JobsConfig, result *ParseResult) []error {
	var errs []error

	if cfg.SchemaVersion == "" {
		info := result.NodeInfos["schema_version"]
		errs = append(errs, &MissingFieldError{
			Field: "schema_version", Context: "root", Line: info.Line, Column: info.Column,
		})
	}

	if cfg.Plan.Name == "" {
		info := result.NodeInfos["plan.name"]
		if info.Line == 0 {
			info = result.NodeInfos["plan"]
		}
		errs = append(errs, &MissingFieldError{
			Field: "name", Context: "plan", Line: info.Line, Column: info.Column,
		})
	}

	if len(cfg.Jobs) == 0 {
		errs = append(errs, &EmptyInputError{SkippedRows: result.SkippedRows})
	}

	return errs
}

// validateJobUniqueness checks that job IDs are unique across all rows.
func validateJobUniqueness(cfg *JobsConfig, result *ParseResult) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, job := range cfg.Jobs {
		if seen[job.ID] {
			info := result.NodeInfos[fmt.Sprintf("jobs[%d].id", i)]
			errs = append(errs, &DuplicateJobError{
				JobID: job.ID, Line: info.Line, Column: info.Column,
			})
		}
		seen[job.ID] = true
	}

	return errs
}

// validateDependencies checks that every dependency token references a known
// job ID, emitting one error per offending job carrying all of its invalid
// tokens.
func validateDependencies(cfg *JobsConfig, result *ParseResult) []error {
	var errs []error

	report := DependencyReport(cfg)
	for i, job := range cfg.Jobs {
		tokens, ok := report[job.ID]
		if !ok {
			continue
		}
		info := result.NodeInfos[fmt.Sprintf("jobs[%d].dependencies", i)]
		if info.Line == 0 {
			info = result.NodeInfos[fmt.Sprintf("jobs[%d]", i)]
		}
		errs = append(errs, &InvalidDependencyError{
			JobID: job.ID, Tokens: tokens, Line: info.Line, Column: info.Column,
		})
	}

	return errs
}

// DependencyReport returns, for each job, the subset of its dependency tokens
// that do not appear among the known job IDs. Jobs with zero invalid tokens
// are omitted from the report.
func DependencyReport(cfg *JobsConfig) InvalidDependencyReport {
	jobIDs := collectJobIDs(cfg)
	report := make(InvalidDependencyReport)

	for _, job := range cfg.Jobs {
		var invalid []string
		for _, dep := range job.Dependencies {
			if !jobIDs[dep] {
				invalid = append(invalid, dep)
			}
		}
		if len(invalid) > 0 {
			report[job.ID] = invalid
		}
	}

	return report
}

// collectJobIDs returns a set of all job IDs.
func collectJobIDs(cfg *JobsConfig) map[string]bool {
	ids := make(map[string]bool)
	for _, job := range cfg.Jobs {
		ids[job.ID] = true
	}
	return ids
}
