package response_models

import "youngeru/internal/planner"

type PlanResponse struct {
	SessionID string         `json:"session_id,omitempty"`
	Saved     bool           `json:"saved"`
	Items     []planner.Item `json:"items"`
}

type PlannerSessionResponse struct {
	ID        string         `json:"id"`
	CreatedAt int64          `json:"created_at"`
	Inputs    planner.Inputs `json:"inputs"`
	Items     []planner.Item `json:"items"`
}
