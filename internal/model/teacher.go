package model

import "time"

type Teacher struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Branch    string    `json:"branch"` // subject area, e.g. "Mathematics"
	CreatedAt time.Time `json:"created_at"`
}

// FullName returns the display name. Derived, never stored.
func (t *Teacher) FullName() string {
	return t.Name + " " + t.Surname
}
