package model

// Schedule is a lesson commitment: teacher X teaches subject S to class C
// at period P on a given weekday.
type Schedule struct {
	ID        int64 `json:"id"`
	DayOfWeek int   `json:"day_of_week"` // 1 = Monday .. 7 = Sunday
	PeriodID  int64 `json:"period_id"`
	TeacherID int64 `json:"teacher_id"`
	ClassID   int64 `json:"class_id"`
	SubjectID int64 `json:"subject_id"`
}
