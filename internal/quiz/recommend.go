package quiz

import "strings"

type Evidence string

const (
	EvidenceA Evidence = "A"
	EvidenceB Evidence = "B"
	EvidenceC Evidence = "C"
)

// Recommendation is one entry of a generated plan. It is never mutated
// after creation.
type Recommendation struct {
	Category   string   `json:"category"`
	Goal       string   `json:"goal,omitempty"`
	Evidence   Evidence `json:"evidence"`
	Rationale  string   `json:"rationale"`
	Dosage     string   `json:"dosage"`
	Timing     string   `json:"timing"`
	Guardrails string   `json:"guardrails"`
}

// CatalogEntry is a recommendation bucket. Entries with an empty Goal are
// always included.
type CatalogEntry struct {
	Category   string
	Goal       string
	Evidence   Evidence
	Rationale  string
	Dosage     string
	Timing     string
	Guardrails string

	// Tailor optionally adds sentences to the rationale from the answers.
	Tailor func(Answers) []string
}

func (e CatalogEntry) applies(a Answers) bool {
	return e.Goal == "" || a.Goals.Has(e.Goal)
}

func (e CatalogEntry) build(a Answers) Recommendation {
	rationale := e.Rationale
	if e.Tailor != nil {
		if extra := e.Tailor(a); len(extra) > 0 {
			rationale = rationale + " " + strings.Join(extra, " ")
		}
	}
	return Recommendation{
		Category:   e.Category,
		Goal:       e.Goal,
		Evidence:   e.Evidence,
		Rationale:  rationale,
		Dosage:     e.Dosage,
		Timing:     e.Timing,
		Guardrails: e.Guardrails,
	}
}

// Engine is a pure mapping from answers to an ordered recommendation
// sequence drawn from a fixed catalog.
type Engine struct {
	catalog []CatalogEntry
}

func NewEngine(catalog []CatalogEntry) *Engine {
	return &Engine{catalog: append([]CatalogEntry(nil), catalog...)}
}

// DefaultEngine uses the built-in catalog.
func DefaultEngine() *Engine { return NewEngine(DefaultCatalog()) }

// Recommend walks the catalog in order and keeps every entry whose goal
// gate is satisfied.
func (e *Engine) Recommend(a Answers) []Recommendation {
	out := make([]Recommendation, 0, len(e.catalog))
	for _, entry := range e.catalog {
		if entry.applies(a) {
			out = append(out, entry.build(a))
		}
	}
	return out
}
