package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categories(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Category)
	}
	return out
}

func TestNormalize(t *testing.T) {
	in, err := Normalize(Inputs{
		Goals:         []string{"Focus", "Focus", "Flying", "Energy"},
		Sensitivities: []string{SensitivityGI, "Other"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{GoalFocus, GoalEnergy}, in.Goals)
	assert.Equal(t, []string{SensitivityGI}, in.Sensitivities)
	assert.Equal(t, 3, in.SleepQuality)
	assert.Equal(t, 3, in.Stress)

	_, err = Normalize(Inputs{Goals: []string{"Flying"}})
	assert.ErrorIs(t, err, ErrNoGoals)

	in, err = Normalize(Inputs{Goals: []string{GoalEnergy}, SleepQuality: 9, Stress: -2})
	require.NoError(t, err)
	assert.Equal(t, 5, in.SleepQuality)
	assert.Equal(t, 1, in.Stress)
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		in   Inputs
		want []string
	}{
		{"energy", Inputs{Goals: []string{GoalEnergy}, SleepQuality: 3}, []string{"Vitamin D3"}},
		{"focus", Inputs{Goals: []string{GoalFocus}, SleepQuality: 4}, []string{"Omega-3 (EPA/DHA)"}},
		{"recovery", Inputs{Goals: []string{GoalRecovery}, SleepQuality: 5}, []string{"Magnesium Glycinate"}},
		{"poor sleep without recovery", Inputs{Goals: []string{GoalFocus}, SleepQuality: 2}, []string{"Omega-3 (EPA/DHA)", "Magnesium Glycinate"}},
		{"all goals in rule order", Inputs{Goals: []string{GoalRecovery, GoalFocus, GoalEnergy}, SleepQuality: 1}, []string{"Vitamin D3", "Omega-3 (EPA/DHA)", "Magnesium Glycinate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, categories(Build(tt.in)))
		})
	}
}
