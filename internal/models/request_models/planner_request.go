package request_models

type PlanRequest struct {
	Goals          []string `json:"goals" binding:"required,min=1"`
	Diet           string   `json:"diet"`
	FishIntake     string   `json:"fish_intake"`
	SunExposure    string   `json:"sun_exposure"`
	SleepQuality   int      `json:"sleep_quality" binding:"omitempty,min=1,max=5"`
	Stress         int      `json:"stress" binding:"omitempty,min=1,max=5"`
	Budget         string   `json:"budget"`
	Sensitivities  []string `json:"sensitivities"`
	MedsConditions string   `json:"meds_conditions"`
}
