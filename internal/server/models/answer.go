package models

// Answer is a reply to a question. AuthorID is nullable because rows predating
// authenticated posting carry no author.
type Answer struct {
	ID         int64  `json:"id"`
	Answer     string `json:"answer"`
	QuestionID int64  `json:"question_id"`
	AuthorID   *int64 `json:"author_id"`
}
