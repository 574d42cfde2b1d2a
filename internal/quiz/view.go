package quiz

// FieldView describes one input control of the active step.
type FieldView struct {
	Field    Field    `json:"field"`
	Multi    bool     `json:"multi"`
	Options  []string `json:"options"`
	Selected []string `json:"selected"`
}

// View is everything a shell needs to render the current screen.
type View struct {
	Step            Step             `json:"step"`
	Title           string           `json:"title,omitempty"`
	Progress        int              `json:"progress"`
	ShowProgress    bool             `json:"show_progress"`
	CanAdvance      bool             `json:"can_advance"`
	CanRetreat      bool             `json:"can_retreat"`
	Fields          []FieldView      `json:"fields,omitempty"`
	Answers         Answers          `json:"answers"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

func (w *Wizard) View() View {
	v := View{
		Step:         w.step,
		Title:        w.step.Title(),
		Progress:     w.Progress(),
		ShowProgress: IsQuizStep(w.step),
		CanAdvance:   w.CanAdvance(),
		CanRetreat:   w.step != StepLanding,
		Answers:      w.Answers(),
	}
	for _, f := range w.step.RequiredFields() {
		v.Fields = append(v.Fields, FieldView{
			Field:    f,
			Multi:    f == FieldGoals,
			Options:  append([]string(nil), Options[f]...),
			Selected: selected(w.answers, f),
		})
	}
	if w.step == StepResults || w.step == StepEmailCapture {
		v.Recommendations = w.Recommendations()
	}
	return v
}

func selected(a Answers, f Field) []string {
	var value string
	switch f {
	case FieldAgeRange:
		value = a.AgeRange
	case FieldGender:
		value = a.Gender
	case FieldActivityLevel:
		value = a.ActivityLevel
	case FieldDietPattern:
		value = a.DietPattern
	case FieldGoals:
		return a.Goals.Sorted()
	}
	if value == "" {
		return []string{}
	}
	return []string{value}
}
