package models

// Question is a posted question. The wire field names ("_id", "category_id")
// are the ones the SPA client expects.
type Question struct {
	ID         int64  `json:"_id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	CategoryID int64  `json:"category_id"`
}
