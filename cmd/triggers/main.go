package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/souqly/souqly-api/internal/application/dispatch"
	"github.com/souqly/souqly-api/internal/config"
	"github.com/souqly/souqly-api/internal/infrastructure/dynamo"
	"github.com/souqly/souqly-api/internal/infrastructure/sns"
	"github.com/souqly/souqly-api/internal/transport/trigger"
)

// Lambda entrypoint for the likes/comments table streams.
func main() {
	cfg := config.Load()

	dynamoClient := dynamo.NewClient(cfg)

	pusher, err := sns.NewSender(cfg)
	if err != nil {
		log.Fatalf("SNS sender not available: %v", err)
	}

	dispatcher := dispatch.NewService(
		dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		dynamo.NewProductRepo(dynamoClient, cfg.DynamoTables.Products),
		dynamo.NewPostRepo(dynamoClient, cfg.DynamoTables.Posts),
		dynamo.NewNotificationRepo(dynamoClient, cfg.DynamoTables.Notifications),
		pusher,
		cfg.DisabledEvents,
	)

	h := trigger.NewHandler(dispatcher, cfg.DynamoTables.Likes, cfg.DynamoTables.Comments)
	lambda.Start(h.Handle)
}
