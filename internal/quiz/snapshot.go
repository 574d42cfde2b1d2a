package quiz

import "fmt"

// Snapshot is the serialisable state of a wizard.
type Snapshot struct {
	Step            Step             `json:"step"`
	Answers         Answers          `json:"answers"`
	Finalized       *Answers         `json:"finalized,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

func (w *Wizard) Snapshot() Snapshot {
	snap := Snapshot{
		Step:            w.step,
		Answers:         w.answers.Clone(),
		Recommendations: w.Recommendations(),
	}
	if w.finalized != nil {
		final := w.finalized.Clone()
		snap.Finalized = &final
	}
	return snap
}

// Restore rebuilds a wizard from a snapshot.
func Restore(engine Recommender, snap Snapshot) (*Wizard, error) {
	if !snap.Step.Valid() {
		return nil, fmt.Errorf("restore wizard: unknown step %q", snap.Step)
	}
	w := NewWizard(engine)
	w.step = snap.Step
	w.answers = snap.Answers.Clone()
	if snap.Finalized != nil {
		final := snap.Finalized.Clone()
		w.finalized = &final
		w.recommendations = append([]Recommendation(nil), snap.Recommendations...)
	}
	return w, nil
}
