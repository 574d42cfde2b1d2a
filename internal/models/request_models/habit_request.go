package request_models

type CreateHabitRequest struct {
	Title        string  `json:"title" binding:"required,max=200"`
	ScheduleType string  `json:"schedule_type"`
	ReminderTime *string `json:"reminder_time"`
}
