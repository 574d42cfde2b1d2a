// Package seed holds the built-in content loaded by the seed command.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed library.yaml
var libraryYAML []byte

type LibraryEntry struct {
	Slug          string   `yaml:"slug"`
	Title         string   `yaml:"title"`
	Category      string   `yaml:"category"`
	EvidenceLevel string   `yaml:"evidence_level"`
	Summary       string   `yaml:"summary"`
	HowToTake     string   `yaml:"how_to_take"`
	Guardrails    string   `yaml:"guardrails"`
	Tags          []string `yaml:"tags"`
}

// Library decodes the embedded library catalog.
func Library() ([]LibraryEntry, error) {
	return ParseLibrary(libraryYAML)
}

func ParseLibrary(data []byte) ([]LibraryEntry, error) {
	var doc struct {
		Items []LibraryEntry `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode library catalog: %w", err)
	}
	seen := make(map[string]bool, len(doc.Items))
	for i, it := range doc.Items {
		if it.Slug == "" || it.Title == "" {
			return nil, fmt.Errorf("library item %d: slug and title are required", i)
		}
		if seen[it.Slug] {
			return nil, fmt.Errorf("library item %d: duplicate slug %q", i, it.Slug)
		}
		switch it.EvidenceLevel {
		case "A", "B", "C":
		default:
			return nil, fmt.Errorf("library item %q: evidence level must be A, B or C", it.Slug)
		}
		seen[it.Slug] = true
	}
	return doc.Items, nil
}
