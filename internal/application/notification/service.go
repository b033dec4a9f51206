package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/souqly/souqly-api/internal/application/dispatch"
	"github.com/souqly/souqly-api/internal/domain"
)

// NotificationStore is the read/update surface for persisted notifications.
type NotificationStore interface {
	ListUnread(ctx context.Context, uid string) ([]domain.Notification, error)
	Get(ctx context.Context, notificationID string) (*domain.Notification, error)
	MarkAsRead(ctx context.Context, notificationID string) (*domain.Notification, error)
}

type Service interface {
	// SendDirect pushes a title/body verbatim to one user's device. No
	// notification record is persisted for this path.
	SendDirect(ctx context.Context, userID, title, body string) error
	ListUnread(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, notificationID, userID string) (*domain.Notification, error)
}

type service struct {
	users  dispatch.UserStore
	repo   NotificationStore
	pusher dispatch.Pusher
}

func NewService(users dispatch.UserStore, repo NotificationStore, pusher dispatch.Pusher) Service {
	return &service{users: users, repo: repo, pusher: pusher}
}

func (s *service) SendDirect(ctx context.Context, userID, title, body string) error {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("lookup user: %w", err)
	}
	if u.PushToken == "" {
		return fmt.Errorf("user %s has no push token: %w", userID, domain.ErrNotFound)
	}
	return s.pusher.SendPush(ctx, u.PushToken, title, body, nil)
}

func (s *service) ListUnread(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.repo.ListUnread(ctx, userID)
}

func (s *service) MarkAsRead(ctx context.Context, notificationID, userID string) (*domain.Notification, error) {
	n, err := s.repo.Get(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n.UID != userID {
		return nil, fmt.Errorf("notification belongs to another user: %w", domain.ErrForbidden)
	}
	return s.repo.MarkAsRead(ctx, notificationID)
}
