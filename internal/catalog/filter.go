package catalog

import (
	"slices"
	"strings"

	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
)

// Filter returns, in their original order, the tools whose name,
// description or category contains query, ignoring case. An empty query
// returns every tool. The input slice is never modified.
func Filter(tools []domain.ToolRecord, query string) []domain.ToolRecord {
	if query == "" {
		return slices.Clone(tools)
	}

	q := strings.ToLower(query)
	filtered := make([]domain.ToolRecord, 0, len(tools))
	for _, tool := range tools {
		if matches(tool, q) {
			filtered = append(filtered, tool)
		}
	}
	return filtered
}

func matches(tool domain.ToolRecord, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(tool.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(tool.Description), lowerQuery) ||
		strings.Contains(strings.ToLower(tool.Category), lowerQuery)
}
