package catalog

import (
	"strings"
	"testing"

	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
	assert "github.com/stretchr/testify/assert"
)

func sampleTools() []domain.ToolRecord {
	return []domain.ToolRecord{
		{ID: "1", Name: "Sherlock", Category: "Username Search", Description: "Find social profiles"},
		{ID: "2", Name: "ExifTool", Category: "Metadata Analysis", Description: "Read image metadata"},
		{ID: "3", Name: "Whois", Category: "Domain Recon", Description: "Query registration records"},
		{ID: "4", Name: "Maigret", Category: "Username Search", Description: "Dossier by USERNAME"},
	}
}

func ids(tools []domain.ToolRecord) []string {
	out := make([]string, len(tools))
	for i, tool := range tools {
		out[i] = tool.ID
	}
	return out
}

func TestFilter_EmptyQueryReturnsEverything(t *testing.T) {
	tools := sampleTools()

	assert.Equal(t, tools, Filter(tools, ""))
}

func TestFilter_Matches(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "matches category", query: "user", expected: []string{"1", "4"}},
		{name: "matches name case-insensitively", query: "EXIF", expected: []string{"2"}},
		{name: "matches description", query: "registration", expected: []string{"3"}},
		{name: "mixed case query against upper-case text", query: "UserName", expected: []string{"1", "4"}},
		{name: "no match", query: "xyz", expected: []string{}},
		{name: "whitespace is a real query", query: " ", expected: []string{"1", "2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(Filter(sampleTools(), tt.query)))
		})
	}
}

func TestFilter_Properties(t *testing.T) {
	tools := sampleTools()
	queries := []string{"", "s", "search", "META", "o", "records", "zzz", "Sherlock"}

	for _, q := range queries {
		got := Filter(tools, q)

		lower := strings.ToLower(q)
		for _, tool := range got {
			assert.True(t, matches(tool, lower), "query %q returned non-matching tool %s", q, tool.ID)
		}

		// everything left out really does not match
		included := make(map[string]bool, len(got))
		for _, tool := range got {
			assert.False(t, included[tool.ID], "duplicate tool %s for query %q", tool.ID, q)
			included[tool.ID] = true
		}
		for _, tool := range tools {
			if !included[tool.ID] && q != "" {
				assert.False(t, matches(tool, lower), "query %q dropped matching tool %s", q, tool.ID)
			}
		}

		// order preserved: result is a subsequence of the input
		pos := 0
		for _, tool := range got {
			for pos < len(tools) && tools[pos].ID != tool.ID {
				pos++
			}
			assert.Less(t, pos, len(tools), "query %q reordered results", q)
			pos++
		}

		assert.Equal(t, got, Filter(tools, q), "filter must be idempotent")
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	tools := sampleTools()
	snapshot := sampleTools()

	filtered := Filter(tools, "")
	filtered[0].Name = "changed"
	_ = Filter(tools, "user")

	assert.Equal(t, snapshot, tools)
}
