package trigger

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/souqly/souqly-api/internal/application/dispatch"
	"github.com/souqly/souqly-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDispatcher struct{ mock.Mock }

func (m *mockDispatcher) Dispatch(ctx context.Context, evt dispatch.Event) (dispatch.Result, error) {
	args := m.Called(ctx, evt)
	return args.Get(0).(dispatch.Result), args.Error(1)
}

const (
	likesARN    = "arn:aws:dynamodb:us-east-1:123456789012:table/likes/stream/2024-01-01T00:00:00.000"
	commentsARN = "arn:aws:dynamodb:us-east-1:123456789012:table/comments/stream/2024-01-01T00:00:00.000"
)

func insertRecord(arn string, image map[string]events.DynamoDBAttributeValue) events.DynamoDBEventRecord {
	return events.DynamoDBEventRecord{
		EventID:        "evt-1",
		EventName:      string(events.DynamoDBOperationTypeInsert),
		EventSourceArn: arn,
		Change:         events.DynamoDBStreamRecord{NewImage: image},
	}
}

func TestHandle_LikeInsert_DispatchesProductLike(t *testing.T) {
	d := &mockDispatcher{}
	d.On("Dispatch", mock.Anything, dispatch.Event{
		Type:      domain.TypeProductLike,
		ActorID:   "liker",
		SubjectID: "p1",
	}).Return(dispatch.Result{Persisted: true, Pushed: true}, nil)

	h := NewHandler(d, "likes", "comments")
	err := h.Handle(context.Background(), events.DynamoDBEvent{
		Records: []events.DynamoDBEventRecord{
			insertRecord(likesARN, map[string]events.DynamoDBAttributeValue{
				"like_id":    events.NewStringAttribute("l1"),
				"product_id": events.NewStringAttribute("p1"),
				"user_id":    events.NewStringAttribute("liker"),
			}),
		},
	})

	require.NoError(t, err)
	d.AssertNumberOfCalls(t, "Dispatch", 1)
}

func TestHandle_PostCommentInsert_DispatchesPostComment(t *testing.T) {
	d := &mockDispatcher{}
	d.On("Dispatch", mock.Anything, dispatch.Event{
		Type:        domain.TypePostComment,
		ActorID:     "commenter",
		SubjectID:   "post1",
		CommentText: "great shot",
	}).Return(dispatch.Result{Persisted: true}, nil)

	h := NewHandler(d, "likes", "comments")
	err := h.Handle(context.Background(), events.DynamoDBEvent{
		Records: []events.DynamoDBEventRecord{
			insertRecord(commentsARN, map[string]events.DynamoDBAttributeValue{
				"comment_id":  events.NewStringAttribute("c1"),
				"parent_type": events.NewStringAttribute(domain.ParentPost),
				"parent_id":   events.NewStringAttribute("post1"),
				"user_id":     events.NewStringAttribute("commenter"),
				"text":        events.NewStringAttribute("great shot"),
			}),
		},
	})

	require.NoError(t, err)
	d.AssertNumberOfCalls(t, "Dispatch", 1)
}

func TestHandle_NonInsert_Skipped(t *testing.T) {
	d := &mockDispatcher{}
	rec := insertRecord(likesARN, map[string]events.DynamoDBAttributeValue{
		"product_id": events.NewStringAttribute("p1"),
		"user_id":    events.NewStringAttribute("liker"),
	})
	rec.EventName = string(events.DynamoDBOperationTypeModify)

	h := NewHandler(d, "likes", "comments")
	err := h.Handle(context.Background(), events.DynamoDBEvent{Records: []events.DynamoDBEventRecord{rec}})

	require.NoError(t, err)
	d.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestHandle_UnknownTable_Skipped(t *testing.T) {
	d := &mockDispatcher{}
	h := NewHandler(d, "likes", "comments")
	err := h.Handle(context.Background(), events.DynamoDBEvent{
		Records: []events.DynamoDBEventRecord{
			insertRecord("arn:aws:dynamodb:us-east-1:123456789012:table/orders/stream/x", map[string]events.DynamoDBAttributeValue{
				"user_id": events.NewStringAttribute("u1"),
			}),
		},
	})

	require.NoError(t, err)
	d.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestHandle_MalformedComment_Skipped(t *testing.T) {
	d := &mockDispatcher{}
	h := NewHandler(d, "likes", "comments")
	err := h.Handle(context.Background(), events.DynamoDBEvent{
		Records: []events.DynamoDBEventRecord{
			insertRecord(commentsARN, map[string]events.DynamoDBAttributeValue{
				"comment_id":  events.NewStringAttribute("c1"),
				"parent_type": events.NewStringAttribute("story"), // unknown parent kind
				"parent_id":   events.NewStringAttribute("s1"),
				"user_id":     events.NewStringAttribute("commenter"),
			}),
		},
	})

	require.NoError(t, err)
	d.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestHandle_DispatchError_SwallowedPerRecord(t *testing.T) {
	d := &mockDispatcher{}
	d.On("Dispatch", mock.Anything, mock.Anything).Return(dispatch.Result{}, errors.New("store unavailable"))

	h := NewHandler(d, "likes", "comments")
	err := h.Handle(context.Background(), events.DynamoDBEvent{
		Records: []events.DynamoDBEventRecord{
			insertRecord(likesARN, map[string]events.DynamoDBAttributeValue{
				"product_id": events.NewStringAttribute("p1"),
				"user_id":    events.NewStringAttribute("liker"),
			}),
			insertRecord(likesARN, map[string]events.DynamoDBAttributeValue{
				"product_id": events.NewStringAttribute("p2"),
				"user_id":    events.NewStringAttribute("liker"),
			}),
		},
	})

	// No error surfaces and every record is still attempted.
	require.NoError(t, err)
	d.AssertNumberOfCalls(t, "Dispatch", 2)
	assert.True(t, d.AssertExpectations(t))
}
