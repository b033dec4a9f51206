package domain

// Like is the trigger input written by the app when a user likes a product.
// It is consumed once from the table stream and never read again.
type Like struct {
	LikeID    string `json:"id" dynamodbav:"like_id"`
	ProductID string `json:"product_id" dynamodbav:"product_id"`
	UserID    string `json:"user_id" dynamodbav:"user_id"`
}

// ParentType values for Comment.
const (
	ParentProduct = "product"
	ParentPost    = "post"
)

// Comment is the trigger input written by the app when a user comments on a
// product or post. ParentType selects which collection ParentID refers to.
type Comment struct {
	CommentID  string `json:"id" dynamodbav:"comment_id"`
	ParentType string `json:"parent_type" dynamodbav:"parent_type"`
	ParentID   string `json:"parent_id" dynamodbav:"parent_id"`
	UserID     string `json:"user_id" dynamodbav:"user_id"`
	Text       string `json:"text" dynamodbav:"text"`
}
