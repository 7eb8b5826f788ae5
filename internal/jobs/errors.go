package jobs

import (
	"fmt"
	"strings"
)

// ParseError represents an error during YAML parsing with location information.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// MissingFieldError represents a required field that is missing.
type MissingFieldError struct {
	// Field is the name of the missing field.
	Field string
	// Context describes where the field is expected.
	Context string
	// Line is the source line number where the error applies.
	Line int
	// Column is the source column number where the error applies.
	Column int
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: missing required field %q in %s", e.Line, e.Field, e.Context)
	}
	return fmt.Sprintf("missing required field %q in %s", e.Field, e.Context)
}

// EmptyInputError indicates that the jobs file contains no usable job rows.
type EmptyInputError struct {
	// SkippedRows is the number of rows dropped for missing id or name.
	SkippedRows int
}

// Error implements the error interface.
func (e *EmptyInputError) Error() string {
	if e.SkippedRows > 0 {
		return fmt.Sprintf("no usable jobs defined (%d row(s) skipped for missing id or name)", e.SkippedRows)
	}
	return "no jobs defined: enter job details and dependencies"
}

// DuplicateJobError represents a job ID defined more than once.
type DuplicateJobError struct {
	// JobID is the duplicated job ID.
	JobID string
	// Line is the source line number of the duplicate row.
	Line int
	// Column is the source column number of the duplicate row.
	Column int
}

// Error implements the error interface.
func (e *DuplicateJobError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: duplicate job ID %q", e.Line, e.JobID)
	}
	return fmt.Sprintf("duplicate job ID %q", e.JobID)
}

// InvalidDependencyError represents a job whose dependency tokens reference
// job IDs that do not exist. It carries every invalid token for the job,
// not just the first.
type InvalidDependencyError struct {
	// JobID is the ID of the job declaring the invalid dependencies.
	JobID string
	// Tokens is the ordered list of dependency tokens with no matching job.
	Tokens []string
	// Line is the source line number of the job row.
	Line int
	// Column is the source column number of the job row.
	Column int
}

// Error implements the error interface.
func (e *InvalidDependencyError) Error() string {
	joined := strings.Join(e.Tokens, ", ")
	if e.Line > 0 {
		return fmt.Sprintf("line %d: job ID %q has invalid dependencies: %s", e.Line, e.JobID, joined)
	}
	return fmt.Sprintf("job ID %q has invalid dependencies: %s", e.JobID, joined)
}

// CycleError represents a cycle detected in job dependencies.
type CycleError struct {
	// Path is the list of job IDs forming the cycle.
	Path []string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	if len(e.Path) == 0 {
		return "graph contains a cycle"
	}
	return fmt.Sprintf("graph contains a cycle: %s", strings.Join(e.Path, " -> "))
}
