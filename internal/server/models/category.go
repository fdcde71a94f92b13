package models

// Category groups questions by topic.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
