package config

import "time"

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# jobviz Configuration
# Project config: .jobviz/config.yml  User config: ~/.config/jobviz/config.yml
# Every key can be overridden via JOBVIZ_* environment variables.

# Diagram settings
orientation: top-bottom               # Layout: top-bottom | bottom-top | left-right | right-left
format: ascii                         # Diagram output: ascii | dot

# Output settings
color: auto                           # Colorize output: auto | always | never

# Watch mode settings
watch:
  debounce: 500ms                     # Quiet period after the last write before regenerating
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		// orientation: Diagram layout direction. The orientation is a pure
		// re-render; it never changes computed layers or the ordered table.
		"orientation": "top-bottom",
		// format: Diagram output format, ASCII grid or Graphviz DOT.
		"format": "ascii",
		// color: Colorize banners, tables, and diagrams.
		// "auto" enables color only when stdout is a terminal.
		"color": "auto",
		// watch: Settings for 'jobviz watch'.
		"watch": map[string]interface{}{
			"debounce": (500 * time.Millisecond).String(),
		},
	}
}
