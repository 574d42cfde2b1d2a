package response_models

type HabitResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	ScheduleType string  `json:"schedule_type"`
	ReminderTime *string `json:"reminder_time,omitempty"`
	DoneToday    bool    `json:"done_today"`
	Streak       int     `json:"streak"`
}
