package response_models

type LibraryItemResponse struct {
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	EvidenceLevel string   `json:"evidence_level"`
	Summary       string   `json:"summary"`
	HowToTake     string   `json:"how_to_take,omitempty"`
	Guardrails    string   `json:"guardrails,omitempty"`
	Tags          []string `json:"tags"`
	UpdatedAt     int64    `json:"updated_at"`
}
