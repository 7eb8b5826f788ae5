package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedRows(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		jobs []Job
		want []Row
	}{
		"linear chain with display offset": {
			jobs: []Job{
				{ID: "A", Name: "Compile"},
				{ID: "B", Name: "Link", Dependencies: []string{"A"}},
				{ID: "C", Name: "Test", Dependencies: []string{"B"}},
			},
			want: []Row{
				{Layer: 1, JobID: "A", Name: "Compile"},
				{Layer: 2, JobID: "B", Name: "Link"},
				{Layer: 3, JobID: "C", Name: "Test"},
			},
		},
		"ties broken by input order": {
			jobs: []Job{
				{ID: "B", Name: "b"},
				{ID: "A", Name: "a"},
				{ID: "C", Name: "c", Dependencies: []string{"A", "B"}},
			},
			want: []Row{
				{Layer: 1, JobID: "B", Name: "b"},
				{Layer: 1, JobID: "A", Name: "a"},
				{Layer: 2, JobID: "C", Name: "c"},
			},
		},
		"later input row can land in an earlier layer": {
			jobs: []Job{
				{ID: "B", Name: "b", Dependencies: []string{"A"}},
				{ID: "A", Name: "a"},
			},
			want: []Row{
				{Layer: 1, JobID: "A", Name: "a"},
				{Layer: 2, JobID: "B", Name: "b"},
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := testSnapshot(t, "p", tt.jobs)
			assert.Equal(t, tt.want, OrderedRows(s))
		})
	}
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	s := testSnapshot(t, "p", []Job{
		{ID: "A", Name: "Compile"},
		{ID: "B", Name: "Link", Dependencies: []string{"A"}},
	})

	out := RenderTable(s, false)

	require.NotEmpty(t, out)
	assert.Contains(t, out, "LAYER")
	assert.Contains(t, out, "JOB ID")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Compile")
	assert.Contains(t, out, "Link")
}
