package quiz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answersWith(goals ...string) Answers {
	a := Answers{
		AgeRange:      "41-45",
		Gender:        "Female",
		ActivityLevel: ActivityModerate,
		DietPattern:   DietBalanced,
		Goals:         GoalSet{},
	}
	for _, g := range goals {
		a.Goals[g] = struct{}{}
	}
	return a
}

func categories(recs []Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Category)
	}
	return out
}

func TestRecommendIsDeterministic(t *testing.T) {
	a := answersWith(GoalEnergy, GoalFocus, GoalSleep)
	first := DefaultEngine().Recommend(a)
	second := DefaultEngine().Recommend(a.Clone())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("recommendations differ (-first +second):\n%s", diff)
	}
}

func TestRecommendEnergyScenario(t *testing.T) {
	recs := DefaultEngine().Recommend(answersWith(GoalEnergy))

	got := categories(recs)
	assert.Contains(t, got, "Energy Support")
	assert.NotContains(t, got, "Recovery Support")
	assert.NotContains(t, got, "Cognitive Function")
}

func TestRecommendRecoveryNeedsGoal(t *testing.T) {
	recs := DefaultEngine().Recommend(answersWith(GoalEnergy, GoalRecovery))
	got := categories(recs)
	assert.Equal(t, []string{"Daily Foundation", "Energy Support", "Recovery Support"}, got)

	recovery := recs[2]
	assert.Equal(t, GoalRecovery, recovery.Goal)
	assert.Contains(t, recovery.Rationale, "activity level requires enhanced recovery")
}

func TestRecommendNeverEmpty(t *testing.T) {
	for _, goal := range Options[FieldGoals] {
		recs := DefaultEngine().Recommend(answersWith(goal))
		require.NotEmpty(t, recs, goal)
		assert.Equal(t, "Daily Foundation", recs[0].Category)
	}
	assert.NotEmpty(t, DefaultEngine().Recommend(Answers{}))
}

func TestRecommendFollowsCatalogOrder(t *testing.T) {
	recs := DefaultEngine().Recommend(answersWith(Options[FieldGoals]...))
	assert.Equal(t, []string{
		"Daily Foundation",
		"Energy Support",
		"Cognitive Function",
		"Recovery Support",
		"Immune Support",
		"Sleep Support",
		"Metabolic Support",
	}, categories(recs))
}

func TestTailoredRationale(t *testing.T) {
	a := answersWith(GoalFocus)
	a.DietPattern = DietStrict
	a.AgeRange = "51-55"
	recs := DefaultEngine().Recommend(a)

	require.Len(t, recs, 2)
	assert.Contains(t, recs[0].Rationale, "after 50")
	assert.Contains(t, recs[1].Rationale, "algae-based")
}

func TestCustomCatalog(t *testing.T) {
	engine := NewEngine([]CatalogEntry{
		{Category: "Always", Evidence: EvidenceC},
		{Category: "Only Sleep", Goal: GoalSleep, Evidence: EvidenceA},
	})
	assert.Equal(t, []string{"Always"}, categories(engine.Recommend(answersWith(GoalEnergy))))
	assert.Equal(t, []string{"Always", "Only Sleep"}, categories(engine.Recommend(answersWith(GoalSleep))))
}
