package model

type ClassRoom struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
