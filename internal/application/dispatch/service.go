package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/souqly/souqly-api/internal/domain"
	"github.com/souqly/souqly-api/internal/pkg/id"
)

// Event is a raw store event handed in by a trigger adapter.
type Event struct {
	Type        string // domain.TypeProductLike | TypeProductComment | TypePostComment
	ActorID     string // user who performed the action
	SubjectID   string // product or post the action refers to
	CommentText string // set for comment events only
}

// Result reports the two independent outcomes of one dispatch. A persisted
// notification is never rolled back when the push fails.
type Result struct {
	Persisted bool
	Pushed    bool
}

// UserStore reads user profiles.
type UserStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

// ProductStore reads products.
type ProductStore interface {
	Get(ctx context.Context, productID string) (*domain.Product, error)
}

// PostStore reads posts.
type PostStore interface {
	Get(ctx context.Context, postID string) (*domain.Post, error)
}

// NotificationStore persists notification records.
type NotificationStore interface {
	Put(ctx context.Context, n *domain.Notification) error
}

// Pusher delivers best-effort push notifications.
type Pusher interface {
	SendPush(ctx context.Context, token, title, body string, data map[string]string) error
}

// route is the per-event-type specialization of the workflow.
type route struct {
	title   string
	subject string // domain.ParentProduct | domain.ParentPost
	message string // template: actor display name, subject display name
}

var routes = map[string]route{
	domain.TypeProductLike:    {title: "New Like ❤️", subject: domain.ParentProduct, message: `%s liked your product "%s"`},
	domain.TypeProductComment: {title: "New Comment 💬", subject: domain.ParentProduct, message: `%s commented on your product "%s"`},
	domain.TypePostComment:    {title: "New Comment 💬", subject: domain.ParentPost, message: `%s commented on your post "%s"`},
}

type Service interface {
	Dispatch(ctx context.Context, evt Event) (Result, error)
}

type service struct {
	users         UserStore
	products      ProductStore
	posts         PostStore
	notifications NotificationStore
	pusher        Pusher
	disabled      map[string]bool
}

// NewService builds the dispatch workflow. disabledEvents lists event types
// short-circuited to a no-op, resolved once at startup.
func NewService(users UserStore, products ProductStore, posts PostStore, notifications NotificationStore, pusher Pusher, disabledEvents []string) Service {
	disabled := make(map[string]bool, len(disabledEvents))
	for _, e := range disabledEvents {
		disabled[e] = true
	}
	return &service{
		users:         users,
		products:      products,
		posts:         posts,
		notifications: notifications,
		pusher:        pusher,
		disabled:      disabled,
	}
}

func (s *service) Dispatch(ctx context.Context, evt Event) (Result, error) {
	rt, ok := routes[evt.Type]
	if !ok {
		return Result{}, fmt.Errorf("unknown event type %q: %w", evt.Type, domain.ErrBadRequest)
	}
	if s.disabled[evt.Type] {
		slog.Info("dispatch disabled for event type, skipping", "type", evt.Type, "subject_id", evt.SubjectID)
		return Result{}, nil
	}

	ownerID, subjectName, err := s.resolveSubject(ctx, rt.subject, evt.SubjectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Subject deleted before the trigger fired; a non-event, not a failure.
			slog.Info("subject not found, skipping dispatch", "type", evt.Type, "subject_id", evt.SubjectID)
			return Result{}, nil
		}
		return Result{}, err
	}

	// A user never gets notified about their own action.
	if evt.ActorID == ownerID {
		return Result{}, nil
	}

	actor, err := s.users.Get(ctx, evt.ActorID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return Result{}, err
	}

	body := fmt.Sprintf(rt.message, actor.DisplayName(), subjectName)
	n := &domain.Notification{
		NotificationID: id.New(),
		UID:            ownerID,
		SenderUID:      evt.ActorID,
		SenderName:     actor.DisplayName(),
		SenderImageURL: actor.ImageURL(),
		Type:           evt.Type,
		CommentText:    evt.CommentText,
		Message:        body,
		Read:           false,
		CreatedAt:      time.Now().UTC(),
	}
	data := map[string]string{
		"type":         evt.Type,
		"senderUid":    evt.ActorID,
		"click_action": "FLUTTER_NOTIFICATION_CLICK",
	}
	if rt.subject == domain.ParentProduct {
		n.ProductID = evt.SubjectID
		n.ProductName = subjectName
		data["productId"] = evt.SubjectID
	} else {
		n.PostID = evt.SubjectID
		n.PostTitle = subjectName
		data["postId"] = evt.SubjectID
	}

	if err := s.notifications.Put(ctx, n); err != nil {
		return Result{}, fmt.Errorf("persist notification: %w", err)
	}

	owner, err := s.users.Get(ctx, ownerID)
	if err != nil || owner.PushToken == "" {
		slog.Info("no push token for recipient, skipping push", "uid", ownerID)
		return Result{Persisted: true}, nil
	}

	if err := s.pusher.SendPush(ctx, owner.PushToken, rt.title, body, data); err != nil {
		// Best-effort: the persisted record stands, no retry.
		slog.Warn("push delivery failed", "uid", ownerID, "type", evt.Type, "err", err)
		return Result{Persisted: true}, nil
	}
	return Result{Persisted: true, Pushed: true}, nil
}

// resolveSubject loads the product or post and returns its owner and display name.
func (s *service) resolveSubject(ctx context.Context, kind, subjectID string) (ownerID, name string, err error) {
	switch kind {
	case domain.ParentProduct:
		p, err := s.products.Get(ctx, subjectID)
		if err != nil {
			return "", "", err
		}
		return p.CreatedBy, p.DisplayName(), nil
	case domain.ParentPost:
		p, err := s.posts.Get(ctx, subjectID)
		if err != nil {
			return "", "", err
		}
		return p.CreatedBy, p.DisplayName(), nil
	default:
		return "", "", fmt.Errorf("unknown subject kind %q: %w", kind, domain.ErrBadRequest)
	}
}
