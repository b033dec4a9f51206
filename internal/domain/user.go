package domain

import "time"

// User is the app user profile as stored in the users table. Only the fields
// the notification workflows read are mapped; the mobile app owns the rest.
type User struct {
	UserID          string    `json:"id" dynamodbav:"user_id"`
	Name            string    `json:"name" dynamodbav:"name"`
	ProfileImageURL string    `json:"profile_image_url" dynamodbav:"profile_image_url"`
	PushToken       string    `json:"push_token,omitempty" dynamodbav:"push_token"`
	CreatedAt       time.Time `json:"created" dynamodbav:"created_at"`
}

// DisplayName returns the name to show in notifications, falling back to
// "Anonymous" when the profile has no name set.
func (u *User) DisplayName() string {
	if u == nil || u.Name == "" {
		return "Anonymous"
	}
	return u.Name
}

// ImageURL returns the profile image URL or empty string when absent.
func (u *User) ImageURL() string {
	if u == nil {
		return ""
	}
	return u.ProfileImageURL
}
