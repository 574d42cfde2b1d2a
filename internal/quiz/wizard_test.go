package quiz

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedWizard(t *testing.T) *Wizard {
	t.Helper()
	w := NewWizard(nil)
	w.Begin()
	require.Equal(t, StepWelcome, w.Step())
	require.True(t, w.Advance())
	require.Equal(t, StepBasics, w.Step())
	return w
}

func fillToGoals(t *testing.T, w *Wizard) {
	t.Helper()
	require.NoError(t, w.SetAnswer(FieldAgeRange, "41-45"))
	require.NoError(t, w.SetAnswer(FieldGender, "Female"))
	require.True(t, w.Advance())
	require.NoError(t, w.SetAnswer(FieldActivityLevel, ActivityModerate))
	require.True(t, w.Advance())
	require.NoError(t, w.SetAnswer(FieldDietPattern, DietBalanced))
	require.True(t, w.Advance())
	require.Equal(t, StepGoals, w.Step())
}

func TestNewWizardStartsOnLanding(t *testing.T) {
	w := NewWizard(nil)
	assert.Equal(t, StepLanding, w.Step())
	assert.False(t, w.CanAdvance())
	assert.False(t, w.Advance())
	assert.Equal(t, StepLanding, w.Step())
}

func TestBasicsGatesOnAgeAndGender(t *testing.T) {
	w := startedWizard(t)

	assert.False(t, w.Advance())
	assert.Equal(t, StepBasics, w.Step())

	require.NoError(t, w.SetAnswer(FieldAgeRange, "46-50"))
	assert.False(t, w.Advance())
	assert.Equal(t, StepBasics, w.Step())

	require.NoError(t, w.SetAnswer(FieldGender, "Male"))
	assert.True(t, w.Advance())
	assert.Equal(t, StepLifestyle, w.Step())
}

func TestSingleSelectIsLastWriteWins(t *testing.T) {
	w := startedWizard(t)
	require.NoError(t, w.SetAnswer(FieldAgeRange, "35-40"))
	require.NoError(t, w.SetAnswer(FieldAgeRange, "51-55"))
	require.NoError(t, w.SetAnswer(FieldAgeRange, "51-55"))
	assert.Equal(t, "51-55", w.Answers().AgeRange)
}

func TestGoalsGateAndToggle(t *testing.T) {
	w := startedWizard(t)
	fillToGoals(t, w)

	assert.False(t, w.Advance())
	assert.Equal(t, StepGoals, w.Step())

	before := w.Answers().Goals.Sorted()
	require.NoError(t, w.SetAnswer(FieldGoals, GoalSleep))
	require.NoError(t, w.SetAnswer(FieldGoals, GoalSleep))
	assert.Equal(t, before, w.Answers().Goals.Sorted())
	assert.False(t, w.CanAdvance())

	require.NoError(t, w.SetAnswer(FieldGoals, GoalEnergy))
	assert.True(t, w.Advance())
	assert.Equal(t, StepResults, w.Step())
}

func TestRetreatNeverTouchesAnswers(t *testing.T) {
	w := startedWizard(t)
	require.NoError(t, w.SetAnswer(FieldAgeRange, "41-45"))
	require.NoError(t, w.SetAnswer(FieldGender, "Female"))
	require.True(t, w.Advance())

	before := w.Answers()
	w.Retreat()
	assert.Equal(t, StepBasics, w.Step())
	w.Retreat()
	assert.Equal(t, StepWelcome, w.Step())
	assert.Equal(t, before, w.Answers())
}

func TestRetreatIgnoresAnswerContent(t *testing.T) {
	empty := startedWizard(t)
	empty.Retreat()
	assert.Equal(t, StepWelcome, empty.Step())

	w := startedWizard(t)
	fillToGoals(t, w)
	w.Retreat()
	w.Retreat()
	require.Equal(t, StepLifestyle, w.Step())
	w.Retreat()
	assert.Equal(t, StepBasics, w.Step())
}

func TestRetreatChain(t *testing.T) {
	cases := map[Step]Step{
		StepLanding:      StepLanding,
		StepWelcome:      StepLanding,
		StepBasics:       StepWelcome,
		StepLifestyle:    StepBasics,
		StepDiet:         StepLifestyle,
		StepGoals:        StepDiet,
		StepResults:      StepGoals,
		StepEmailCapture: StepResults,
	}
	for from, want := range cases {
		w := NewWizard(nil)
		w.step = from
		w.Retreat()
		assert.Equal(t, want, w.Step(), "retreat from %s", from)
	}
}

func TestProgressDependsOnlyOnStep(t *testing.T) {
	want := map[Step]int{
		StepLanding:      0,
		StepWelcome:      0,
		StepBasics:       25,
		StepLifestyle:    50,
		StepDiet:         75,
		StepGoals:        100,
		StepResults:      0,
		StepEmailCapture: 0,
	}
	for step, pct := range want {
		assert.Equal(t, pct, Progress(step), "progress at %s", step)
	}

	w := startedWizard(t)
	assert.Equal(t, 25, w.Progress())
	require.NoError(t, w.SetAnswer(FieldAgeRange, "41-45"))
	require.NoError(t, w.SetAnswer(FieldGoals, GoalFocus))
	assert.Equal(t, 25, w.Progress())
}

func TestSetAnswerRejectsUnknownValues(t *testing.T) {
	w := startedWizard(t)
	assert.ErrorIs(t, w.SetAnswer(Field("shoe_size"), "42"), ErrUnknownField)
	assert.ErrorIs(t, w.SetAnswer(FieldGender, "Robot"), ErrInvalidOption)
	assert.ErrorIs(t, w.SetAnswer(FieldGoals, "Fly"), ErrInvalidOption)
	assert.Equal(t, Answers{}, w.Answers())
}

func TestAdvanceIntoResultsFinalizesOnce(t *testing.T) {
	w := startedWizard(t)
	fillToGoals(t, w)

	_, ok := w.Finalized()
	assert.False(t, ok)
	assert.Empty(t, w.Recommendations())

	require.NoError(t, w.SetAnswer(FieldGoals, GoalEnergy))
	require.True(t, w.Advance())

	final, ok := w.Finalized()
	require.True(t, ok)
	assert.True(t, final.Goals.Has(GoalEnergy))
	assert.NotEmpty(t, w.Recommendations())

	// the finalized record is a copy
	require.NoError(t, w.SetAnswer(FieldGoals, GoalSleep))
	final, _ = w.Finalized()
	assert.False(t, final.Goals.Has(GoalSleep))

	require.True(t, w.Advance())
	assert.Equal(t, StepEmailCapture, w.Step())
	assert.False(t, w.Advance())
}

func TestBeginOnlyFromLanding(t *testing.T) {
	w := startedWizard(t)
	require.NoError(t, w.SetAnswer(FieldAgeRange, "41-45"))
	w.Begin()
	assert.Equal(t, StepBasics, w.Step())
	assert.Equal(t, "41-45", w.Answers().AgeRange)

	w.Retreat()
	w.Retreat()
	require.Equal(t, StepLanding, w.Step())
	w.Begin()
	assert.Equal(t, StepWelcome, w.Step())
	assert.Equal(t, Answers{}, w.Answers())
}

func TestResetDiscardsEverything(t *testing.T) {
	w := startedWizard(t)
	fillToGoals(t, w)
	require.NoError(t, w.SetAnswer(FieldGoals, GoalRecovery))
	require.True(t, w.Advance())

	w.Reset()
	assert.Equal(t, StepLanding, w.Step())
	assert.Equal(t, Answers{}, w.Answers())
	assert.Empty(t, w.Recommendations())
}

func TestSnapshotRestore(t *testing.T) {
	w := startedWizard(t)
	fillToGoals(t, w)
	require.NoError(t, w.SetAnswer(FieldGoals, GoalFocus))
	require.True(t, w.Advance())

	raw, err := json.Marshal(w.Snapshot())
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(raw, &snap))
	restored, err := Restore(nil, snap)
	require.NoError(t, err)

	assert.Equal(t, w.Step(), restored.Step())
	assert.Equal(t, w.Answers().Goals.Sorted(), restored.Answers().Goals.Sorted())
	assert.Equal(t, w.Recommendations(), restored.Recommendations())
	assert.Equal(t, w.View().Progress, restored.View().Progress)

	_, err = Restore(nil, Snapshot{Step: "nowhere"})
	assert.Error(t, err)
}

func TestViewExposesActiveControls(t *testing.T) {
	w := startedWizard(t)
	v := w.View()
	assert.True(t, v.ShowProgress)
	assert.False(t, v.CanAdvance)
	require.Len(t, v.Fields, 2)
	assert.Equal(t, FieldAgeRange, v.Fields[0].Field)
	assert.Equal(t, Options[FieldAgeRange], v.Fields[0].Options)
	assert.Empty(t, v.Fields[0].Selected)

	fillToGoals(t, w)
	v = w.View()
	require.Len(t, v.Fields, 1)
	assert.True(t, v.Fields[0].Multi)
	assert.Nil(t, v.Recommendations)
}
