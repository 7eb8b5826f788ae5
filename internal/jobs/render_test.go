package jobs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	return testSnapshot(t, "Build pipeline", []Job{
		{ID: "A", Name: "Compile"},
		{ID: "B", Name: "Link", Dependencies: []string{"A"}},
		{ID: "C", Name: "Test", Dependencies: []string{"B"}},
	})
}

func TestRenderDiagram(t *testing.T) {
	t.Parallel()

	out := RenderDiagram(chainSnapshot(t), OrientationTopToBottom, false)

	assert.Contains(t, out, "Plan: Build pipeline")
	assert.Contains(t, out, "Jobs: 3  |  Layers: 3  |  Orientation: Top to Bottom")
	assert.Contains(t, out, "[A] Compile")
	assert.Contains(t, out, "[B] Link")
	assert.Contains(t, out, "[C] Test")
	assert.Contains(t, out, "Dependencies:")
	assert.Contains(t, out, "A --> B")
	assert.Contains(t, out, "B --> C")
	assert.Contains(t, out, "Legend:")
}

func TestRenderDiagram_VerticalOrder(t *testing.T) {
	t.Parallel()

	s := chainSnapshot(t)

	tb := RenderDiagram(s, OrientationTopToBottom, false)
	assert.Less(t, strings.Index(tb, "[A] Compile"), strings.Index(tb, "[C] Test"),
		"top-bottom puts layer 1 above layer 3")

	bt := RenderDiagram(s, OrientationBottomToTop, false)
	assert.Greater(t, strings.Index(bt, "[A] Compile"), strings.Index(bt, "[C] Test"),
		"bottom-top puts layer 1 below layer 3")
}

func TestRenderDiagram_HorizontalOrder(t *testing.T) {
	t.Parallel()

	s := chainSnapshot(t)

	// Left-to-right places the whole chain on separate rows but increasing
	// columns; the first layer starts at the leftmost column.
	lr := RenderDiagram(s, OrientationLeftToRight, false)
	lrLines := strings.Split(lr, "\n")
	aLine, cLine := findLine(lrLines, "[A] Compile"), findLine(lrLines, "[C] Test")
	require.NotEqual(t, -1, aLine)
	require.NotEqual(t, -1, cLine)
	assert.Less(t, indentOf(lrLines[aLine]), indentOf(lrLines[cLine]),
		"left-right indents later layers further right")

	rl := RenderDiagram(s, OrientationRightToLeft, false)
	rlLines := strings.Split(rl, "\n")
	aLine, cLine = findLine(rlLines, "[A] Compile"), findLine(rlLines, "[C] Test")
	require.NotEqual(t, -1, aLine)
	require.NotEqual(t, -1, cLine)
	assert.Greater(t, indentOf(rlLines[aLine]), indentOf(rlLines[cLine]),
		"right-left indents earlier layers further right")
}

func findLine(lines []string, substr string) int {
	for i, line := range lines {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

func TestRenderCompact(t *testing.T) {
	t.Parallel()

	s := testSnapshot(t, "p", []Job{
		{ID: "A", Name: "a"},
		{ID: "B", Name: "b"},
		{ID: "C", Name: "c", Dependencies: []string{"A", "B"}},
	})

	assert.Equal(t, "Layer 1: [A, B] -> Layer 2: [C]", RenderCompact(s))
}

func TestRenderDOT(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		orientation Orientation
		wantRankdir string
	}{
		"top-bottom": {orientation: OrientationTopToBottom, wantRankdir: "rankdir=TB"},
		"bottom-top": {orientation: OrientationBottomToTop, wantRankdir: "rankdir=BT"},
		"left-right": {orientation: OrientationLeftToRight, wantRankdir: "rankdir=LR"},
		"right-left": {orientation: OrientationRightToLeft, wantRankdir: "rankdir=RL"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out := RenderDOT(chainSnapshot(t), tt.orientation)

			assert.Contains(t, out, "digraph plan {")
			assert.Contains(t, out, tt.wantRankdir)
			assert.Contains(t, out, `label="Build pipeline"`)
			assert.Contains(t, out, `"A" -> "B";`)
			assert.Contains(t, out, `"B" -> "C";`)
			assert.Contains(t, out, "rank=same")
			assert.Contains(t, out, `fillcolor="lightblue"`)
			assert.Contains(t, out, `fillcolor="lightgreen"`)
			assert.Contains(t, out, `fillcolor="salmon"`)
		})
	}
}

// DOT output must be identical across orientations except for rankdir.
func TestRenderDOT_OrientationOnlyChangesRankdir(t *testing.T) {
	t.Parallel()

	s := chainSnapshot(t)

	tb := strings.ReplaceAll(RenderDOT(s, OrientationTopToBottom), "rankdir=TB", "rankdir=X")
	rl := strings.ReplaceAll(RenderDOT(s, OrientationRightToLeft), "rankdir=RL", "rankdir=X")
	assert.Equal(t, tb, rl)
}

func TestLayerPalette_WrapsAround(t *testing.T) {
	t.Parallel()

	assert.Equal(t, layerDotColor(0), layerDotColor(6), "palette repeats every six layers")
	assert.Equal(t, layerColor(1), layerColor(7))
	assert.Equal(t, layerTextColor(2), layerTextColor(8))
}
