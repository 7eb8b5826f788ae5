// Package jobs provides parsing, validation, layering, and visualization of
// job dependency definitions.
//
// The package supports:
//   - Parsing jobs YAML files with schema_version, plan metadata, and job rows
//   - Validating dependency references, duplicate IDs, and required fields
//   - Building the directed dependency graph and assigning execution layers
//     (longest dependency chain) with cycle detection
//   - Rendering the ordered execution table and a layered diagram in four
//     orientations, as ASCII or Graphviz DOT
//
// Jobs files list rows of (id, name, dependencies) where dependencies is
// either a comma-separated string of job IDs or a YAML sequence.
package jobs
