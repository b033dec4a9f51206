package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/souqly/souqly-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockNotificationStore struct{ mock.Mock }

func (m *mockNotificationStore) ListUnread(ctx context.Context, uid string) ([]domain.Notification, error) {
	args := m.Called(ctx, uid)
	if ns, _ := args.Get(0).([]domain.Notification); ns != nil {
		return ns, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotificationStore) Get(ctx context.Context, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	if n, _ := args.Get(0).(*domain.Notification); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotificationStore) MarkAsRead(ctx context.Context, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	if n, _ := args.Get(0).(*domain.Notification); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPusher struct{ mock.Mock }

func (m *mockPusher) SendPush(ctx context.Context, token, title, body string, data map[string]string) error {
	return m.Called(ctx, token, title, body, data).Error(0)
}

// --- SendDirect ---

func TestSendDirect_HappyPath(t *testing.T) {
	us := &mockUserStore{}
	ps := &mockPusher{}
	us.On("Get", mock.Anything, "u1").Return(&domain.User{UserID: "u1", PushToken: "token-1"}, nil)
	ps.On("SendPush", mock.Anything, "token-1", "Hello", "World", mock.Anything).Return(nil)

	err := NewService(us, nil, ps).SendDirect(context.Background(), "u1", "Hello", "World")

	require.NoError(t, err)
	ps.AssertNumberOfCalls(t, "SendPush", 1)
}

func TestSendDirect_UserNotFound(t *testing.T) {
	us := &mockUserStore{}
	ps := &mockPusher{}
	us.On("Get", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	err := NewService(us, nil, ps).SendDirect(context.Background(), "ghost", "Hi", "Body")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	ps.AssertNotCalled(t, "SendPush", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendDirect_MissingToken_NotFound(t *testing.T) {
	us := &mockUserStore{}
	ps := &mockPusher{}
	us.On("Get", mock.Anything, "u1").Return(&domain.User{UserID: "u1"}, nil)

	err := NewService(us, nil, ps).SendDirect(context.Background(), "u1", "Hi", "Body")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	ps.AssertNotCalled(t, "SendPush", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendDirect_DeliveryFailure_Surfaced(t *testing.T) {
	us := &mockUserStore{}
	ps := &mockPusher{}
	us.On("Get", mock.Anything, "u1").Return(&domain.User{UserID: "u1", PushToken: "t"}, nil)
	ps.On("SendPush", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("sns down"))

	err := NewService(us, nil, ps).SendDirect(context.Background(), "u1", "Hi", "Body")

	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}

// --- MarkAsRead ---

func TestMarkAsRead_WrongRecipient_Forbidden(t *testing.T) {
	ns := &mockNotificationStore{}
	ns.On("Get", mock.Anything, "n1").Return(&domain.Notification{NotificationID: "n1", UID: "owner"}, nil)

	_, err := NewService(nil, ns, nil).MarkAsRead(context.Background(), "n1", "someone-else")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	ns.AssertNotCalled(t, "MarkAsRead", mock.Anything, mock.Anything)
}

func TestMarkAsRead_HappyPath(t *testing.T) {
	ns := &mockNotificationStore{}
	ns.On("Get", mock.Anything, "n1").Return(&domain.Notification{NotificationID: "n1", UID: "owner"}, nil)
	ns.On("MarkAsRead", mock.Anything, "n1").Return(&domain.Notification{NotificationID: "n1", UID: "owner", Read: true}, nil)

	n, err := NewService(nil, ns, nil).MarkAsRead(context.Background(), "n1", "owner")

	require.NoError(t, err)
	assert.True(t, n.Read)
}
