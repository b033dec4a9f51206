package domain

import "time"

// VerificationCode stores the live OTP for an email address.
// PK: email — a new request for the same address overwrites the prior code.
// ExpiresAt is a Unix timestamp used as the table's TTL attribute; expiry is
// checked by the verifier, never enforced here.
type VerificationCode struct {
	Email     string    `json:"email" dynamodbav:"email"`
	Code      string    `json:"code" dynamodbav:"code"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	ExpiresAt int64     `json:"expires_at" dynamodbav:"expires_at"`
}
