package quiz

// Recommender maps finalized answers to recommendations.
type Recommender interface {
	Recommend(answers Answers) []Recommendation
}

// Wizard drives one quiz session through the flow table. It is not safe
// for concurrent use; callers serialize access per session.
type Wizard struct {
	engine  Recommender
	step    Step
	answers Answers

	finalized       *Answers
	recommendations []Recommendation
}

// NewWizard returns a wizard on the landing page with empty answers.
func NewWizard(engine Recommender) *Wizard {
	if engine == nil {
		engine = DefaultEngine()
	}
	return &Wizard{engine: engine, step: StepLanding}
}

func (w *Wizard) Step() Step { return w.step }

// Answers returns a copy of the in-progress answers.
func (w *Wizard) Answers() Answers { return w.answers.Clone() }

// Finalized returns the answers captured on entering results, if any.
func (w *Wizard) Finalized() (Answers, bool) {
	if w.finalized == nil {
		return Answers{}, false
	}
	return w.finalized.Clone(), true
}

func (w *Wizard) Recommendations() []Recommendation {
	return append([]Recommendation(nil), w.recommendations...)
}

func (w *Wizard) Progress() int { return Progress(w.step) }

// Begin enters the welcome screen from landing with a fresh record.
func (w *Wizard) Begin() {
	if w.step != StepLanding {
		return
	}
	w.answers = Answers{}
	w.finalized = nil
	w.recommendations = nil
	w.step = StepWelcome
}

// CanAdvance reports whether the active step has a next state and all of
// its required fields are set.
func (w *Wizard) CanAdvance() bool {
	spec, ok := lookup(w.step)
	if !ok || spec.next == "" {
		return false
	}
	for _, f := range spec.required {
		if !w.answers.IsSet(f) {
			return false
		}
	}
	return true
}

// Advance moves to the next state. It is a no-op returning false when
// the active step is not satisfied.
func (w *Wizard) Advance() bool {
	if !w.CanAdvance() {
		return false
	}
	spec, _ := lookup(w.step)
	if spec.next == StepResults {
		final := w.answers.Clone()
		w.finalized = &final
		w.recommendations = w.engine.Recommend(final)
	}
	w.step = spec.next
	return true
}

// Retreat moves to the previous state. Answers are left untouched.
func (w *Wizard) Retreat() {
	spec, ok := lookup(w.step)
	if !ok {
		return
	}
	w.step = spec.prev
}

// SetAnswer overwrites a single-select field or toggles a goal.
func (w *Wizard) SetAnswer(field Field, value string) error {
	return w.answers.set(field, value)
}

// Reset discards the session's answers and returns to landing.
func (w *Wizard) Reset() {
	w.step = StepLanding
	w.answers = Answers{}
	w.finalized = nil
	w.recommendations = nil
}
