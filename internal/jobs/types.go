package jobs

// JobsConfig represents the root structure of a jobs file.
// It contains schema version information, plan metadata, and the ordered
// list of job rows.
type JobsConfig struct {
	// SchemaVersion is the version of the jobs schema format (e.g., "1.0").
	SchemaVersion string `yaml:"schema_version"`
	// Plan contains metadata about the job plan.
	Plan PlanMetadata `yaml:"plan"`
	// Jobs is the ordered list of job definitions.
	Jobs []Job `yaml:"jobs"`
}

// PlanMetadata contains metadata about the job plan.
type PlanMetadata struct {
	// Name is the human-readable name for the plan.
	Name string `yaml:"name"`
}

// Job represents a single unit of work parsed from one row of the jobs file.
// A Job is immutable once built for a given graph computation.
type Job struct {
	// ID is the unique identifier for this job (e.g., "compile").
	ID string `yaml:"id"`
	// Name is the human-readable display name for the job.
	Name string `yaml:"name"`
	// Dependencies lists the job IDs that must complete before this job.
	// Tokens are trimmed and empty tokens are dropped during parsing.
	Dependencies []string `yaml:"dependencies,omitempty"`
}
