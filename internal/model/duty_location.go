package model

// DutyLocation is a supervision spot (yard, corridor, canteen).
type DutyLocation struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
