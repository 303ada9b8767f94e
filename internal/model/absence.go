package model

import "time"

// Absence is a leave record for a teacher over a closed date interval.
// Day granularity: it is independent of periods.
type Absence struct {
	ID        int64     `json:"id"`
	TeacherID int64     `json:"teacher_id"`
	Reason    string    `json:"reason"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// Covers reports whether day falls within [StartDate, EndDate], both ends
// inclusive. Only the calendar date of each argument is considered.
func (a *Absence) Covers(day time.Time) bool {
	d := dateOnly(day)
	return !d.Before(dateOnly(a.StartDate)) && !d.After(dateOnly(a.EndDate))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
