package config

import (
	"os"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	DynamoTables DynamoTables

	SendGridAPIKey string
	EmailFrom      string

	SNSRegion string

	// DisabledEvents lists dispatch event types short-circuited to a no-op.
	// Resolved once at startup; used when the mobile client performs the same
	// dispatch itself and server-side triggers would duplicate notifications.
	DisabledEvents []string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users         string
	Products      string
	Posts         string
	Likes         string
	Comments      string
	Notifications string
	OTPCodes      string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		DynamoTables: DynamoTables{
			Users:         getEnv("DYNAMO_TABLE_USERS", "users"),
			Products:      getEnv("DYNAMO_TABLE_PRODUCTS", "products"),
			Posts:         getEnv("DYNAMO_TABLE_POSTS", "posts"),
			Likes:         getEnv("DYNAMO_TABLE_LIKES", "likes"),
			Comments:      getEnv("DYNAMO_TABLE_COMMENTS", "comments"),
			Notifications: getEnv("DYNAMO_TABLE_NOTIFICATIONS", "notifications"),
			OTPCodes:      getEnv("DYNAMO_TABLE_OTP_CODES", "otp_codes"),
		},

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailFrom:      getEnv("EMAIL_FROM", "noreply@souqly.app"),

		SNSRegion: getEnv("SNS_REGION", "us-east-1"),

		DisabledEvents: splitList(getEnv("DISPATCH_DISABLED_EVENTS", "")),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
