package domain

import "time"

// Notification types.
const (
	TypeProductLike    = "product_like"
	TypeProductComment = "product_comment"
	TypePostComment    = "post_comment"
)

// Notification is the persisted in-app notification record. Immutable after
// creation except for the Read flag, which the recipient flips when viewing.
type Notification struct {
	NotificationID string    `json:"id" dynamodbav:"notification_id"`
	UID            string    `json:"uid" dynamodbav:"uid"`
	SenderUID      string    `json:"senderUid" dynamodbav:"sender_uid"`
	SenderName     string    `json:"senderName" dynamodbav:"sender_name"`
	SenderImageURL string    `json:"senderImageUrl" dynamodbav:"sender_image_url"`
	Type           string    `json:"type" dynamodbav:"type"`
	ProductID      string    `json:"productId,omitempty" dynamodbav:"product_id"`
	ProductName    string    `json:"productName,omitempty" dynamodbav:"product_name"`
	PostID         string    `json:"postId,omitempty" dynamodbav:"post_id"`
	PostTitle      string    `json:"postTitle,omitempty" dynamodbav:"post_title"`
	CommentText    string    `json:"commentText,omitempty" dynamodbav:"comment_text"`
	Message        string    `json:"message" dynamodbav:"message"`
	Read           bool      `json:"read" dynamodbav:"read"`
	CreatedAt      time.Time `json:"timestamp" dynamodbav:"created_at"`
}
