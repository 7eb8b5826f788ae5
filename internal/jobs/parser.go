package jobs

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseResult contains the parsed jobs config and source location information.
type ParseResult struct {
	Config    *JobsConfig
	NodeInfos map[string]NodeInfo // Maps path (e.g., "jobs[0].id") to location
	// SkippedRows counts rows dropped because their id or name was missing.
	SkippedRows int
}

// NodeInfo stores source location information for a YAML node.
type NodeInfo struct {
	Line   int
	Column int
}

// ParseJobsFile parses a jobs configuration from a YAML file.
// Returns the parsed config with source location tracking for error reporting.
func ParseJobsFile(path string) (*ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading jobs file: %w", err)
	}

	return ParseJobsBytes(data)
}

// ParseJobsBytes parses a jobs configuration from YAML bytes.
// Rows missing an id or name are filtered out and counted in SkippedRows.
// Dependency tokens are trimmed; tokens that are empty after trimming are
// dropped here so the validator and graph builder never see them.
func ParseJobsBytes(data []byte) (*ParseResult, error) {
	var rootNode yaml.Node
	if err := yaml.Unmarshal(data, &rootNode); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if rootNode.Kind != yaml.DocumentNode || len(rootNode.Content) == 0 {
		return nil, fmt.Errorf("parsing YAML: empty document")
	}

	result := &ParseResult{
		Config:    &JobsConfig{},
		NodeInfos: make(map[string]NodeInfo),
	}

	if err := parseRootNode(rootNode.Content[0], result); err != nil {
		return nil, err
	}

	return result, nil
}

// parseRootNode parses the root mapping node into a JobsConfig.
func parseRootNode(node *yaml.Node, result *ParseResult) error {
	if node.Kind != yaml.MappingNode {
		return &ParseError{Line: node.Line, Column: node.Column, Message: "expected mapping node at root"}
	}

	for i := 0; i < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		switch keyNode.Value {
		case "schema_version":
			result.NodeInfos["schema_version"] = NodeInfo{Line: valueNode.Line, Column: valueNode.Column}
			result.Config.SchemaVersion = valueNode.Value
		case "plan":
			if err := parsePlanMetadata(valueNode, result); err != nil {
				return err
			}
		case "jobs":
			if err := parseJobs(valueNode, result); err != nil {
				return err
			}
		}
	}

	return nil
}

// parsePlanMetadata extracts the plan metadata from a YAML node.
func parsePlanMetadata(node *yaml.Node, result *ParseResult) error {
	result.NodeInfos["plan"] = NodeInfo{Line: node.Line, Column: node.Column}

	if node.Kind != yaml.MappingNode {
		return &ParseError{Line: node.Line, Column: node.Column, Message: "expected mapping for 'plan' field"}
	}

	for i := 0; i < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		if keyNode.Value == "name" {
			result.NodeInfos["plan.name"] = NodeInfo{Line: valueNode.Line, Column: valueNode.Column}
			result.Config.Plan.Name = valueNode.Value
		}
	}

	return nil
}

// parseJobs extracts the jobs list from a YAML node. Rows without a usable
// id or name are skipped; indices in NodeInfos refer to the kept rows.
func parseJobs(node *yaml.Node, result *ParseResult) error {
	result.NodeInfos["jobs"] = NodeInfo{Line: node.Line, Column: node.Column}

	if node.Kind != yaml.SequenceNode {
		return &ParseError{Line: node.Line, Column: node.Column, Message: "expected sequence for 'jobs' field"}
	}

	for _, jobNode := range node.Content {
		job, infos, err := parseJob(jobNode)
		if err != nil {
			return err
		}

		if job.ID == "" || job.Name == "" {
			result.SkippedRows++
			continue
		}

		prefix := fmt.Sprintf("jobs[%d]", len(result.Config.Jobs))
		result.NodeInfos[prefix] = NodeInfo{Line: jobNode.Line, Column: jobNode.Column}
		for key, info := range infos {
			result.NodeInfos[prefix+"."+key] = info
		}
		result.Config.Jobs = append(result.Config.Jobs, job)
	}

	return nil
}

// parseJob extracts a single job from a YAML node, returning per-field
// location info keyed by field name.
func parseJob(node *yaml.Node) (Job, map[string]NodeInfo, error) {
	if node.Kind != yaml.MappingNode {
		return Job{}, nil, &ParseError{Line: node.Line, Column: node.Column, Message: "expected mapping for job"}
	}

	var job Job
	infos := make(map[string]NodeInfo)

	for i := 0; i < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		switch keyNode.Value {
		case "id":
			infos["id"] = NodeInfo{Line: valueNode.Line, Column: valueNode.Column}
			job.ID = strings.TrimSpace(valueNode.Value)
		case "name":
			infos["name"] = NodeInfo{Line: valueNode.Line, Column: valueNode.Column}
			job.Name = strings.TrimSpace(valueNode.Value)
		case "dependencies":
			infos["dependencies"] = NodeInfo{Line: valueNode.Line, Column: valueNode.Column}
			job.Dependencies = parseDependencies(valueNode)
		}
	}

	return job, infos, nil
}

// parseDependencies extracts dependency tokens from a YAML node.
// A scalar value is split on commas (the original tabular input format);
// a sequence is taken item by item. Either way tokens are normalized.
func parseDependencies(node *yaml.Node) []string {
	switch node.Kind {
	case yaml.ScalarNode:
		return SplitDependencyList(node.Value)
	case yaml.SequenceNode:
		var tokens []string
		for _, item := range node.Content {
			tokens = append(tokens, item.Value)
		}
		return normalizeTokens(tokens)
	default:
		return nil
	}
}

// SplitDependencyList splits a comma-separated dependency string into
// normalized tokens. Empty or missing text yields no tokens.
func SplitDependencyList(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return normalizeTokens(strings.Split(text, ","))
}

// normalizeTokens trims whitespace around each token and drops tokens that
// are empty after trimming.
func normalizeTokens(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		out = append(out, tok)
	}
	return out
}
