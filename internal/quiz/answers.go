package quiz

import (
	"encoding/json"
	"errors"
	"slices"
)

var (
	ErrUnknownField  = errors.New("unknown quiz field")
	ErrInvalidOption = errors.New("value is not one of the field options")
)

type Field string

const (
	FieldAgeRange      Field = "age_range"
	FieldGender        Field = "gender"
	FieldActivityLevel Field = "activity_level"
	FieldDietPattern   Field = "diet_pattern"
	FieldGoals         Field = "goals"
)

const (
	GoalEnergy   = "Increase energy levels"
	GoalFocus    = "Improve mental focus"
	GoalRecovery = "Better recovery from exercise"
	GoalImmune   = "Support immune system"
	GoalSleep    = "Better sleep quality"
	GoalWeight   = "Maintain healthy weight"
)

const (
	ActivitySedentary = "Sedentary (desk job, minimal exercise)"
	ActivityLight     = "Lightly active (light exercise 1-3 days/week)"
	ActivityModerate  = "Moderately active (moderate exercise 3-5 days/week)"
	ActivityVery      = "Very active (hard exercise 6-7 days/week)"
)

const (
	DietStandard        = "Standard American Diet (processed foods, fast food)"
	DietBalanced        = "Balanced (mix of whole foods and processed)"
	DietHealthConscious = "Health-conscious (mostly whole foods)"
	DietStrict          = "Strict (paleo, keto, vegan, etc.)"
)

// Options lists the allowed values per field, in display order.
var Options = map[Field][]string{
	FieldAgeRange:      {"35-40", "41-45", "46-50", "51-55"},
	FieldGender:        {"Male", "Female"},
	FieldActivityLevel: {ActivitySedentary, ActivityLight, ActivityModerate, ActivityVery},
	FieldDietPattern:   {DietStandard, DietBalanced, DietHealthConscious, DietStrict},
	FieldGoals:         {GoalEnergy, GoalFocus, GoalRecovery, GoalImmune, GoalSleep, GoalWeight},
}

func isOption(field Field, value string) bool {
	return slices.Contains(Options[field], value)
}

// GoalSet is an unordered set of goals. The zero value is an empty set.
type GoalSet map[string]struct{}

func (g GoalSet) Has(goal string) bool {
	_, ok := g[goal]
	return ok
}

func (g GoalSet) Len() int { return len(g) }

// Sorted returns the goals in lexical order so encodings are stable.
func (g GoalSet) Sorted() []string {
	out := make([]string, 0, len(g))
	for goal := range g {
		out = append(out, goal)
	}
	slices.Sort(out)
	return out
}

func (g GoalSet) clone() GoalSet {
	if g == nil {
		return nil
	}
	out := make(GoalSet, len(g))
	for goal := range g {
		out[goal] = struct{}{}
	}
	return out
}

func (g GoalSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Sorted())
}

func (g *GoalSet) UnmarshalJSON(data []byte) error {
	var goals []string
	if err := json.Unmarshal(data, &goals); err != nil {
		return err
	}
	set := make(GoalSet, len(goals))
	for _, goal := range goals {
		set[goal] = struct{}{}
	}
	*g = set
	return nil
}

// Answers is the record accumulated over one quiz session.
type Answers struct {
	AgeRange      string  `json:"age_range"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
	DietPattern   string  `json:"diet_pattern"`
	Goals         GoalSet `json:"goals"`
}

func (a Answers) Clone() Answers {
	a.Goals = a.Goals.clone()
	return a
}

// IsSet reports whether the field holds a value (non-empty string, or a
// non-empty goal set).
func (a Answers) IsSet(field Field) bool {
	switch field {
	case FieldAgeRange:
		return a.AgeRange != ""
	case FieldGender:
		return a.Gender != ""
	case FieldActivityLevel:
		return a.ActivityLevel != ""
	case FieldDietPattern:
		return a.DietPattern != ""
	case FieldGoals:
		return a.Goals.Len() > 0
	}
	return false
}

// set overwrites a single-select field or toggles a goal.
func (a *Answers) set(field Field, value string) error {
	if _, ok := Options[field]; !ok {
		return ErrUnknownField
	}
	if !isOption(field, value) {
		return ErrInvalidOption
	}

	switch field {
	case FieldAgeRange:
		a.AgeRange = value
	case FieldGender:
		a.Gender = value
	case FieldActivityLevel:
		a.ActivityLevel = value
	case FieldDietPattern:
		a.DietPattern = value
	case FieldGoals:
		if a.Goals == nil {
			a.Goals = GoalSet{}
		}
		if a.Goals.Has(value) {
			delete(a.Goals, value)
		} else {
			a.Goals[value] = struct{}{}
		}
	}
	return nil
}
