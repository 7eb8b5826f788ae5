package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseValid is a test helper that parses YAML bytes and fails the test on
// parse errors.
func parseValid(t *testing.T, data string) *ParseResult {
	t.Helper()

	result, err := ParseJobsBytes([]byte(data))
	require.NoError(t, err)
	return result
}

func TestDependencyReport(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		jobs []Job
		want InvalidDependencyReport
	}{
		"all dependencies valid": {
			jobs: []Job{
				{ID: "A", Name: "Compile"},
				{ID: "B", Name: "Link", Dependencies: []string{"A"}},
			},
			want: InvalidDependencyReport{},
		},
		"unknown dependency reported": {
			jobs: []Job{
				{ID: "X", Name: "Bad", Dependencies: []string{"Y"}},
			},
			want: InvalidDependencyReport{"X": {"Y"}},
		},
		"all invalid tokens reported, not just the first": {
			jobs: []Job{
				{ID: "A", Name: "a"},
				{ID: "B", Name: "b", Dependencies: []string{"Q", "A", "R"}},
			},
			want: InvalidDependencyReport{"B": {"Q", "R"}},
		},
		"multiple offending jobs": {
			jobs: []Job{
				{ID: "A", Name: "a", Dependencies: []string{"Z"}},
				{ID: "B", Name: "b", Dependencies: []string{"Z", "A"}},
			},
			want: InvalidDependencyReport{"A": {"Z"}, "B": {"Z"}},
		},
		"no dependencies at all": {
			jobs: []Job{
				{ID: "A", Name: "a"},
				{ID: "B", Name: "b"},
			},
			want: InvalidDependencyReport{},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := &JobsConfig{SchemaVersion: "1.0", Plan: PlanMetadata{Name: "p"}, Jobs: tt.jobs}
			got := DependencyReport(cfg)

			assert.Len(t, got, len(tt.want))
			for id, tokens := range tt.want {
				assert.Equal(t, tokens, got[id], "report for job %q", id)
			}
		})
	}
}

func TestValidateJobs_Valid(t *testing.T) {
	t.Parallel()

	result := parseValid(t, `schema_version: "1.0"
plan:
  name: p
jobs:
  - id: A
    name: Compile
  - id: B
    name: Link
    dependencies: "A"
`)

	errs := ValidateJobs(result.Config, result)
	assert.Empty(t, errs)
}

func TestValidateJobs_RequiredFields(t *testing.T) {
	t.Parallel()

	result := parseValid(t, "jobs:\n  - id: A\n    name: a\n")

	errs := ValidateJobs(result.Config, result)
	require.Len(t, errs, 2)

	var fields []string
	for _, err := range errs {
		var mfe *MissingFieldError
		require.ErrorAs(t, err, &mfe)
		fields = append(fields, mfe.Field)
	}
	assert.ElementsMatch(t, []string{"schema_version", "name"}, fields)
}

func TestValidateJobs_EmptyInput(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		data        string
		wantSkipped int
	}{
		"no jobs key": {
			data: "schema_version: \"1.0\"\nplan:\n  name: p\n",
		},
		"empty jobs list": {
			data: "schema_version: \"1.0\"\nplan:\n  name: p\njobs: []\n",
		},
		"all rows missing id or name": {
			data:        "schema_version: \"1.0\"\nplan:\n  name: p\njobs:\n  - id: A\n  - name: b\n",
			wantSkipped: 2,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			result := parseValid(t, tt.data)
			errs := ValidateJobs(result.Config, result)
			require.Len(t, errs, 1)

			var eie *EmptyInputError
			require.ErrorAs(t, errs[0], &eie)
			assert.Equal(t, tt.wantSkipped, eie.SkippedRows)
		})
	}
}

func TestValidateJobs_DuplicateIDs(t *testing.T) {
	t.Parallel()

	result := parseValid(t, `schema_version: "1.0"
plan:
  name: p
jobs:
  - id: A
    name: first
  - id: A
    name: second
`)

	errs := ValidateJobs(result.Config, result)
	require.Len(t, errs, 1)

	var dje *DuplicateJobError
	require.ErrorAs(t, errs[0], &dje)
	assert.Equal(t, "A", dje.JobID)
	assert.Greater(t, dje.Line, 0, "duplicate error should carry a source line")
}

func TestValidateJobs_InvalidDependencies(t *testing.T) {
	t.Parallel()

	result := parseValid(t, `schema_version: "1.0"
plan:
  name: p
jobs:
  - id: X
    name: Bad
    dependencies: "Y"
  - id: A
    name: a
    dependencies: "X, Q, R"
`)

	errs := ValidateJobs(result.Config, result)
	require.Len(t, errs, 2)

	var first *InvalidDependencyError
	require.ErrorAs(t, errs[0], &first)
	assert.Equal(t, "X", first.JobID)
	assert.Equal(t, []string{"Y"}, first.Tokens)
	assert.Greater(t, first.Line, 0)

	var second *InvalidDependencyError
	require.ErrorAs(t, errs[1], &second)
	assert.Equal(t, "A", second.JobID)
	assert.Equal(t, []string{"Q", "R"}, second.Tokens)
	assert.Contains(t, second.Error(), "Q, R", "error message lists every invalid token")
}
