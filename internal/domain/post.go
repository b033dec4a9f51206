package domain

import "time"

// Post is a social feed post. Read-only in this service.
type Post struct {
	PostID    string    `json:"id" dynamodbav:"post_id"`
	CreatedBy string    `json:"created_by" dynamodbav:"created_by"`
	Title     string    `json:"title" dynamodbav:"title"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
}

// DisplayName returns the post title, defaulting to "Post" when unset.
func (p *Post) DisplayName() string {
	if p == nil || p.Title == "" {
		return "Post"
	}
	return p.Title
}
