package quiz

type Step string

const (
	StepLanding      Step = "landing"
	StepWelcome      Step = "welcome"
	StepBasics       Step = "basics"
	StepLifestyle    Step = "lifestyle"
	StepDiet         Step = "diet"
	StepGoals        Step = "goals"
	StepResults      Step = "results"
	StepEmailCapture Step = "email"
)

// stepSpec is one row of the flow table. An empty next means the step
// cannot advance.
type stepSpec struct {
	step     Step
	title    string
	required []Field
	next     Step
	prev     Step
}

var flow = []stepSpec{
	{step: StepLanding, prev: StepLanding},
	{step: StepWelcome, title: "Welcome to YoungerU", next: StepBasics, prev: StepLanding},
	{step: StepBasics, title: "Tell us about yourself", required: []Field{FieldAgeRange, FieldGender}, next: StepLifestyle, prev: StepWelcome},
	{step: StepLifestyle, title: "What's your activity level?", required: []Field{FieldActivityLevel}, next: StepDiet, prev: StepBasics},
	{step: StepDiet, title: "How would you describe your diet?", required: []Field{FieldDietPattern}, next: StepGoals, prev: StepLifestyle},
	{step: StepGoals, title: "What are your main health goals?", required: []Field{FieldGoals}, next: StepResults, prev: StepDiet},
	{step: StepResults, title: "Your Personalized Plan", next: StepEmailCapture, prev: StepGoals},
	{step: StepEmailCapture, title: "Get Your Personalized Plan", prev: StepResults},
}

// quizSteps are the steps that show a progress bar.
var quizSteps = []Step{StepBasics, StepLifestyle, StepDiet, StepGoals}

func lookup(step Step) (stepSpec, bool) {
	for _, s := range flow {
		if s.step == step {
			return s, true
		}
	}
	return stepSpec{}, false
}

// Valid reports whether step is a known flow state.
func (s Step) Valid() bool {
	_, ok := lookup(s)
	return ok
}

// Title is the heading shown for the step.
func (s Step) Title() string {
	spec, _ := lookup(s)
	return spec.title
}

// RequiredFields returns the fields gating the step's forward transition.
func (s Step) RequiredFields() []Field {
	spec, _ := lookup(s)
	return append([]Field(nil), spec.required...)
}

// QuizStepIndex returns the 1-based position of step among the quiz
// steps, or 0 when step is not a quiz step.
func QuizStepIndex(step Step) int {
	for i, s := range quizSteps {
		if s == step {
			return i + 1
		}
	}
	return 0
}

func IsQuizStep(step Step) bool { return QuizStepIndex(step) > 0 }

// Progress is the percentage of the quiz reached at step, rounded for
// display. It is 0 outside the quiz steps.
func Progress(step Step) int {
	idx := QuizStepIndex(step)
	if idx == 0 {
		return 0
	}
	return (idx*100 + len(quizSteps)/2) / len(quizSteps)
}

// QuizSteps returns the question steps in order.
func QuizSteps() []Step { return append([]Step(nil), quizSteps...) }
