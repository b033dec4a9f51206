package trigger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/souqly/souqly-api/internal/application/dispatch"
	"github.com/souqly/souqly-api/internal/domain"
)

// Handler consumes DynamoDB Stream records from the likes and comments tables
// and feeds them to the dispatch workflow. Stream triggers have no response
// channel, so every dispatch failure is logged and swallowed.
type Handler struct {
	dispatcher    dispatch.Service
	likesTable    string
	commentsTable string
}

func NewHandler(dispatcher dispatch.Service, likesTable, commentsTable string) *Handler {
	return &Handler{
		dispatcher:    dispatcher,
		likesTable:    likesTable,
		commentsTable: commentsTable,
	}
}

// Handle processes one stream batch. Only INSERT records dispatch; everything
// else is skipped. Always returns nil so Lambda never retries the batch.
func (h *Handler) Handle(ctx context.Context, e events.DynamoDBEvent) error {
	for _, record := range e.Records {
		if record.EventName != string(events.DynamoDBOperationTypeInsert) {
			continue
		}

		evt, ok := h.toEvent(record)
		if !ok {
			slog.Warn("skipping unrecognized stream record", "event_id", record.EventID, "source", record.EventSourceArn)
			continue
		}

		result, err := h.dispatcher.Dispatch(ctx, evt)
		if err != nil {
			slog.Error("dispatch failed", "type", evt.Type, "subject_id", evt.SubjectID, "err", err)
			continue
		}
		slog.Info("dispatched", "type", evt.Type, "subject_id", evt.SubjectID,
			"persisted", result.Persisted, "pushed", result.Pushed)
	}
	return nil
}

// toEvent maps a stream record's new image to a dispatch event based on the
// source table.
func (h *Handler) toEvent(record events.DynamoDBEventRecord) (dispatch.Event, bool) {
	image := record.Change.NewImage
	switch tableFromARN(record.EventSourceArn) {
	case h.likesTable:
		evt := dispatch.Event{
			Type:      domain.TypeProductLike,
			ActorID:   strAttr(image, "user_id"),
			SubjectID: strAttr(image, "product_id"),
		}
		return evt, evt.ActorID != "" && evt.SubjectID != ""
	case h.commentsTable:
		evt := dispatch.Event{
			ActorID:     strAttr(image, "user_id"),
			SubjectID:   strAttr(image, "parent_id"),
			CommentText: strAttr(image, "text"),
		}
		switch strAttr(image, "parent_type") {
		case domain.ParentProduct:
			evt.Type = domain.TypeProductComment
		case domain.ParentPost:
			evt.Type = domain.TypePostComment
		default:
			return dispatch.Event{}, false
		}
		return evt, evt.ActorID != "" && evt.SubjectID != ""
	}
	return dispatch.Event{}, false
}

// tableFromARN extracts the table name from a stream ARN:
// arn:aws:dynamodb:region:account:table/NAME/stream/TIMESTAMP
func tableFromARN(arn string) string {
	parts := strings.Split(arn, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func strAttr(image map[string]events.DynamoDBAttributeValue, name string) string {
	av, ok := image[name]
	if !ok || av.DataType() != events.DataTypeString {
		return ""
	}
	return av.String()
}
