package model

// Period is one bell period of the school day.
// StartTime/EndTime are zero-padded 24-hour "HH:MM" values, so lexicographic
// comparison matches chronological comparison.
type Period struct {
	ID        int64  `json:"id"`
	Order     int    `json:"order"` // 1..N, strictly increasing with StartTime
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Contains reports whether clock ("HH:MM") falls inside the period,
// both ends inclusive.
func (p *Period) Contains(clock string) bool {
	return p.StartTime <= clock && clock <= p.EndTime
}
