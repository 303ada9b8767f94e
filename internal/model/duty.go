package model

// Duty is a supervision commitment at a location on a given weekday.
type Duty struct {
	ID         int64  `json:"id"`
	DayOfWeek  int    `json:"day_of_week"` // 1 = Monday .. 7 = Sunday
	TeacherID  int64  `json:"teacher_id"`
	LocationID int64  `json:"location_id"`
	PeriodID   *int64 `json:"period_id"` // nil = all-day duty, covers every period
}

// AllDay reports whether the duty spans every period of its day.
func (d *Duty) AllDay() bool {
	return d.PeriodID == nil
}
