package jobs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/text"
)

// The layer palette mirrors the color set of the plot output this replaces:
// lightblue, lightgreen, salmon, grey, cyan, yellow. Nodes are colored by
// layer modulo the palette size; the order is fixed for deterministic output.
var (
	layerColors = []*color.Color{
		color.New(color.FgCyan),
		color.New(color.FgGreen),
		color.New(color.FgRed),
		color.New(color.FgWhite),
		color.New(color.FgHiCyan),
		color.New(color.FgYellow),
	}

	layerTextColors = []text.Color{
		text.FgCyan,
		text.FgGreen,
		text.FgRed,
		text.FgWhite,
		text.FgHiCyan,
		text.FgYellow,
	}

	layerDotColors = []string{
		"lightblue",
		"lightgreen",
		"salmon",
		"grey",
		"cyan",
		"yellow",
	}
)

// layerColor returns the terminal color for a zero-based layer.
func layerColor(layer int) *color.Color {
	return layerColors[layer%len(layerColors)]
}

// layerTextColor returns the table row color for a zero-based layer.
func layerTextColor(layer int) text.Color {
	return layerTextColors[layer%len(layerTextColors)]
}

// layerDotColor returns the Graphviz fill color for a zero-based layer.
func layerDotColor(layer int) string {
	return layerDotColors[layer%len(layerDotColors)]
}

// RenderDiagram generates an ASCII diagram of the layered graph. Node cells
// are placed on a grid derived from the orientation's coordinate transform,
// followed by the dependency edge list. Uses portable ASCII characters only.
func RenderDiagram(s *Snapshot, o Orientation, colored bool) string {
	if s.Graph.NodeCount() == 0 {
		return "No jobs to visualize.\n"
	}

	var sb strings.Builder
	sb.WriteString(renderDiagramHeader(s, o))
	sb.WriteString("\n")
	sb.WriteString(renderGrid(s, o, colored))
	sb.WriteString("\n")
	sb.WriteString(renderEdgeList(s))
	sb.WriteString(renderLegend())

	return sb.String()
}

// renderDiagramHeader renders the plan title and summary line.
func renderDiagramHeader(s *Snapshot, o Orientation) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Plan: %s\n", s.PlanName)
	sb.WriteString(strings.Repeat("=", len(s.PlanName)+6) + "\n")
	fmt.Fprintf(&sb, "Jobs: %d  |  Layers: %d  |  Orientation: %s\n",
		s.Graph.NodeCount(), s.Layers.MaxLayer()+1, o.Label())
	return sb.String()
}

// renderGrid places one cell per node on the orientation grid. Rows are
// printed from the highest Y down, columns left to right.
func renderGrid(s *Snapshot, o Orientation, colored bool) string {
	positions := Positions(s, o)

	minX, maxX, minY, maxY := gridBounds(positions)
	cellWidth := maxLabelWidth(s) + 2

	byCell := make(map[Point]string, len(positions))
	for id, p := range positions {
		byCell[p] = id
	}

	var sb strings.Builder
	for y := maxY; y >= minY; y-- {
		line := renderGridRow(s, byCell, y, minX, maxX, cellWidth, colored)
		if strings.TrimSpace(stripColor(line)) == "" {
			continue
		}
		sb.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	return sb.String()
}

// renderGridRow renders one horizontal slice of the grid.
func renderGridRow(s *Snapshot, byCell map[Point]string, y, minX, maxX, cellWidth int, colored bool) string {
	var sb strings.Builder
	for x := minX; x <= maxX; x++ {
		id, ok := byCell[Point{X: x, Y: y}]
		if !ok {
			sb.WriteString(strings.Repeat(" ", cellWidth))
			continue
		}
		label := nodeLabel(s, id)
		padding := strings.Repeat(" ", cellWidth-len(label))
		if colored {
			label = layerColor(s.Layers[id]).Sprint(label)
		}
		sb.WriteString(label + padding)
	}
	return sb.String()
}

// nodeLabel formats the diagram cell for a node.
func nodeLabel(s *Snapshot, id string) string {
	return fmt.Sprintf("[%s] %s", id, s.Graph.Name(id))
}

// maxLabelWidth returns the widest node label in the snapshot.
func maxLabelWidth(s *Snapshot) int {
	max := 0
	for _, id := range s.Graph.Nodes() {
		if w := len(nodeLabel(s, id)); w > max {
			max = w
		}
	}
	return max
}

// gridBounds returns the inclusive coordinate bounds of the positions.
func gridBounds(positions map[string]Point) (minX, maxX, minY, maxY int) {
	first := true
	for _, p := range positions {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, maxX, minY, maxY
}

// stripColor removes ANSI escape sequences for blank-line detection.
func stripColor(line string) string {
	for {
		start := strings.Index(line, "\x1b[")
		if start < 0 {
			return line
		}
		end := strings.Index(line[start:], "m")
		if end < 0 {
			return line
		}
		line = line[:start] + line[start+end+1:]
	}
}

// renderEdgeList renders the dependency edge section.
func renderEdgeList(s *Snapshot) string {
	edges := s.Graph.Edges()
	if len(edges) == 0 {
		return ""
	}

	lines := make([]string, 0, len(edges))
	for _, e := range edges {
		lines = append(lines, fmt.Sprintf("  %s --> %s\n", e.From, e.To))
	}
	sort.Strings(lines)

	var sb strings.Builder
	sb.WriteString("Dependencies:\n")
	sb.WriteString("-------------\n")
	for _, line := range lines {
		sb.WriteString(line)
	}
	sb.WriteString("\n")
	return sb.String()
}

// renderLegend renders the legend explaining symbols.
func renderLegend() string {
	var sb strings.Builder
	sb.WriteString("Legend:\n")
	sb.WriteString("  [id] name = job node, colored by layer\n")
	sb.WriteString("  dep --> job = job runs after dep\n")
	return sb.String()
}

// RenderCompact generates a compact single-line representation.
// Format: Layer 1: [a, b] -> Layer 2: [c]
func RenderCompact(s *Snapshot) string {
	groups := groupByLayer(s)
	if len(groups) == 0 {
		return "Empty plan"
	}

	parts := make([]string, len(groups))
	for i, ids := range groups {
		parts[i] = fmt.Sprintf("Layer %d: [%s]", i+displayLayerOffset, strings.Join(ids, ", "))
	}

	return strings.Join(parts, " -> ")
}

// groupByLayer groups node IDs by zero-based layer, preserving input order
// within each layer.
func groupByLayer(s *Snapshot) [][]string {
	max := s.Layers.MaxLayer()
	if max < 0 {
		return nil
	}

	groups := make([][]string, max+1)
	for _, id := range s.Graph.Nodes() {
		layer := s.Layers[id]
		groups[layer] = append(groups[layer], id)
	}
	return groups
}

// dotRankDirs maps orientations to Graphviz rankdir values.
var dotRankDirs = map[Orientation]string{
	OrientationTopToBottom: "TB",
	OrientationBottomToTop: "BT",
	OrientationLeftToRight: "LR",
	OrientationRightToLeft: "RL",
}

// RenderDOT generates a Graphviz DOT rendering of the layered graph.
// Orientation maps to rankdir and each layer becomes a rank=same group, so
// changing orientation re-renders coordinates without touching layers.
func RenderDOT(s *Snapshot, o Orientation) string {
	var sb strings.Builder

	sb.WriteString("digraph plan {\n")
	fmt.Fprintf(&sb, "  rankdir=%s;\n", dotRankDirs[o])
	sb.WriteString("  labelloc=\"t\";\n")
	fmt.Fprintf(&sb, "  label=%q;\n", s.PlanName)
	sb.WriteString("  node [shape=box, style=filled];\n")

	for layer, ids := range groupByLayer(s) {
		sb.WriteString("  { rank=same;")
		for _, id := range ids {
			fmt.Fprintf(&sb, " %q;", id)
		}
		sb.WriteString(" }\n")
		for _, id := range ids {
			fmt.Fprintf(&sb, "  %q [label=%q, fillcolor=%q];\n",
				id, fmt.Sprintf("%s\n(%s)", s.Graph.Name(id), id), layerDotColor(layer))
		}
	}

	for _, e := range s.Graph.Edges() {
		fmt.Fprintf(&sb, "  %q -> %q;\n", e.From, e.To)
	}

	sb.WriteString("}\n")
	return sb.String()
}
