package planner

import (
	"errors"
	"slices"
)

var ErrNoGoals = errors.New("select at least one goal")

const (
	GoalEnergy   = "Energy"
	GoalFocus    = "Focus"
	GoalRecovery = "Recovery"

	SensitivityGI       = "GI sensitive"
	SensitivityCaffeine = "Caffeine sensitive"

	DefaultScore = 3
)

var (
	Goals         = []string{GoalEnergy, GoalFocus, GoalRecovery}
	Sensitivities = []string{SensitivityGI, SensitivityCaffeine}
)

type Inputs struct {
	Goals          []string `json:"goals"`
	Diet           string   `json:"diet"`
	FishIntake     string   `json:"fish_intake"`
	SunExposure    string   `json:"sun_exposure"`
	SleepQuality   int      `json:"sleep_quality"`
	Stress         int      `json:"stress"`
	Budget         string   `json:"budget"`
	Sensitivities  []string `json:"sensitivities"`
	MedsConditions string   `json:"meds_conditions"`
}

type Item struct {
	Category   string `json:"category"`
	Why        string `json:"why"`
	Dose       string `json:"dose"`
	Timing     string `json:"timing"`
	Evidence   string `json:"evidence"`
	Guardrails string `json:"guardrails"`
	FoodFirst  string `json:"food_first"`
}

var (
	vitaminD = Item{
		Category:   "Vitamin D3",
		Why:        "Low sun exposure and energy goals suggest potential deficiency",
		Dose:       "2000-4000 IU daily",
		Timing:     "With breakfast (fat-soluble)",
		Evidence:   "A",
		Guardrails: "Monitor levels if taking >4000 IU long-term",
		FoodFirst:  "Fatty fish, egg yolks, fortified foods",
	}
	omega3 = Item{
		Category:   "Omega-3 (EPA/DHA)",
		Why:        "Brain health support for focus and cognitive function",
		Dose:       "1-2g combined EPA/DHA daily",
		Timing:     "With meals to improve absorption",
		Evidence:   "A",
		Guardrails: "Consult doctor if on blood thinners",
		FoodFirst:  "Fatty fish 2-3x per week",
	}
	magnesium = Item{
		Category:   "Magnesium Glycinate",
		Why:        "Supports muscle recovery and sleep quality",
		Dose:       "200-400mg before bed",
		Timing:     "30-60 minutes before sleep",
		Evidence:   "B",
		Guardrails: "Start low, may cause loose stools in some",
		FoodFirst:  "Dark leafy greens, nuts, seeds",
	}
)

// Normalize fills defaults, drops unknown goals and sensitivities and
// removes duplicates. It returns ErrNoGoals when no known goal remains.
func Normalize(in Inputs) (Inputs, error) {
	in.Goals = keepKnown(in.Goals, Goals)
	in.Sensitivities = keepKnown(in.Sensitivities, Sensitivities)
	if in.SleepQuality == 0 {
		in.SleepQuality = DefaultScore
	}
	if in.Stress == 0 {
		in.Stress = DefaultScore
	}
	in.SleepQuality = clamp(in.SleepQuality)
	in.Stress = clamp(in.Stress)
	if len(in.Goals) == 0 {
		return in, ErrNoGoals
	}
	return in, nil
}

// Build applies the plan rules in a fixed order: vitamin D for energy,
// omega-3 for focus, magnesium for recovery or poor sleep.
func Build(in Inputs) []Item {
	out := make([]Item, 0, 3)
	if slices.Contains(in.Goals, GoalEnergy) {
		out = append(out, vitaminD)
	}
	if slices.Contains(in.Goals, GoalFocus) {
		out = append(out, omega3)
	}
	if slices.Contains(in.Goals, GoalRecovery) || in.SleepQuality < DefaultScore {
		out = append(out, magnesium)
	}
	return out
}

func keepKnown(values, known []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if slices.Contains(known, v) && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func clamp(v int) int {
	return min(max(v, 1), 5)
}
