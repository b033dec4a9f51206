package sns

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/souqly/souqly-api/internal/config"
)

// PushSender delivers mobile push notifications via AWS SNS. The token is the
// device's SNS platform-endpoint ARN registered by the mobile app.
type PushSender interface {
	SendPush(ctx context.Context, token, title, body string, data map[string]string) error
}

type sender struct {
	client *sns.Client
}

func NewSender(cfg *config.Config) (PushSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.SNSRegion),
	)
	if err != nil {
		return nil, err
	}
	return &sender{client: sns.NewFromConfig(awsCfg)}, nil
}

// gcmPayload is the FCM-over-SNS message envelope.
type gcmPayload struct {
	Notification gcmNotification   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type gcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (s *sender) SendPush(ctx context.Context, token, title, body string, data map[string]string) error {
	gcm, err := json.Marshal(gcmPayload{
		Notification: gcmNotification{Title: title, Body: body},
		Data:         data,
	})
	if err != nil {
		return fmt.Errorf("marshal push payload: %w", err)
	}
	// SNS requires the per-platform payload nested as a JSON string.
	msg, err := json.Marshal(map[string]string{
		"default": body,
		"GCM":     string(gcm),
	})
	if err != nil {
		return fmt.Errorf("marshal sns message: %w", err)
	}

	_, err = s.client.Publish(ctx, &sns.PublishInput{
		TargetArn:        aws.String(token),
		Message:          aws.String(string(msg)),
		MessageStructure: aws.String("json"),
	})
	return err
}
