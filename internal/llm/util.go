// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanYAMLBlock removes a markdown code fence wrapping a YAML response.
// LLMs often wrap YAML in ```yaml ... ``` blocks even when instructed not to.
// At most one leading and one trailing fence is stripped; text without a
// fence passes through unchanged, so the function is idempotent.
func CleanYAMLBlock(text string) string {
	cleaned := strings.TrimSpace(text)

	switch {
	case strings.HasPrefix(cleaned, "```yaml"):
		cleaned = strings.TrimSpace(cleaned[len("```yaml"):])
	case strings.HasPrefix(cleaned, "```yml"):
		cleaned = strings.TrimSpace(cleaned[len("```yml"):])
	case strings.HasPrefix(cleaned, "```"):
		cleaned = strings.TrimSpace(cleaned[len("```"):])
	}

	if strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimSpace(cleaned[:len(cleaned)-len("```")])
	}

	return cleaned
}
