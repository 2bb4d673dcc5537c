package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
	yaml "gopkg.in/yaml.v3"
)

//go:embed tools.yaml
var builtinCatalog []byte

// Catalog is the ordered, read-only list of tools shown by the browser
type Catalog struct {
	tools []domain.ToolRecord
	byID  map[string]int
}

type catalogFile struct {
	Tools []domain.ToolRecord `yaml:"tools"`
}

// Default returns the catalog compiled into the binary
func Default() (*Catalog, error) {
	return Parse(builtinCatalog)
}

// Load reads a catalog from path, or returns the built-in one when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog document
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(file.Tools)
}

// New validates and normalizes tools into a catalog. The slice is copied.
func New(tools []domain.ToolRecord) (*Catalog, error) {
	c := &Catalog{
		tools: make([]domain.ToolRecord, 0, len(tools)),
		byID:  make(map[string]int, len(tools)),
	}

	for i, tool := range tools {
		tool = normalize(tool)
		if err := validate(tool); err != nil {
			return nil, fmt.Errorf("tool #%d: %w", i+1, err)
		}
		if _, exists := c.byID[tool.ID]; exists {
			return nil, fmt.Errorf("tool #%d: duplicate id %q", i+1, tool.ID)
		}
		c.byID[tool.ID] = len(c.tools)
		c.tools = append(c.tools, tool)
	}

	return c, nil
}

func normalize(tool domain.ToolRecord) domain.ToolRecord {
	tool.ID = strings.TrimSpace(tool.ID)
	if tool.InputType == "" {
		tool.InputType = domain.InputNone
		if tool.CommandTemplate != "" {
			tool.InputType = domain.InputText
		}
	}
	if tool.Profile == "" {
		tool.Profile = domain.ProfileTemplate
	}
	return tool
}

func validate(tool domain.ToolRecord) error {
	if tool.ID == "" {
		return fmt.Errorf("missing id")
	}
	if strings.TrimSpace(tool.Name) == "" {
		return fmt.Errorf("tool %q: missing name", tool.ID)
	}

	switch tool.InputType {
	case domain.InputNone, domain.InputText, domain.InputFile:
	default:
		return fmt.Errorf("tool %q: unknown input type %q", tool.ID, tool.InputType)
	}

	switch tool.Profile {
	case domain.ProfileTemplate, domain.ProfileImageAnalysis, domain.ProfileDocumentCrawl:
	default:
		return fmt.Errorf("tool %q: unknown profile %q", tool.ID, tool.Profile)
	}

	if tool.CommandTemplate != "" {
		if n := strings.Count(tool.CommandTemplate, domain.InputPlaceholder); n != 1 {
			return fmt.Errorf("tool %q: command template must contain %s exactly once, found %d", tool.ID, domain.InputPlaceholder, n)
		}
	}

	if tool.Profile == domain.ProfileDocumentCrawl && !tool.AcceptsFiles() {
		return fmt.Errorf("tool %q: document_crawl profile requires a file input or allow_file_upload", tool.ID)
	}
	if tool.Profile == domain.ProfileImageAnalysis && !tool.AcceptsFiles() {
		return fmt.Errorf("tool %q: image_analysis profile requires a file input or allow_file_upload", tool.ID)
	}

	return nil
}

// All returns a copy of every tool in catalog order
func (c *Catalog) All() []domain.ToolRecord {
	return slices.Clone(c.tools)
}

// Len returns the number of tools
func (c *Catalog) Len() int {
	return len(c.tools)
}

// Get looks a tool up by id
func (c *Catalog) Get(id string) (domain.ToolRecord, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.ToolRecord{}, false
	}
	return c.tools[i], true
}

// Search filters the catalog with the browser's search semantics
func (c *Catalog) Search(query string) []domain.ToolRecord {
	return Filter(c.tools, query)
}
