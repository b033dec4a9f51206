package http

import (
	"github.com/souqly/souqly-api/internal/application/dispatch"
	"github.com/souqly/souqly-api/internal/application/notification"
	"github.com/souqly/souqly-api/internal/application/otp"
	"github.com/souqly/souqly-api/internal/infrastructure/sendgrid"
)

// Deps holds all infrastructure dependencies for the router. Everything is an
// interface so handler tests can run against mocks.
type Deps struct {
	UserRepo         dispatch.UserStore
	NotificationRepo notification.NotificationStore
	VerificationRepo otp.VerificationStore
	Mailer           sendgrid.Mailer
	Pusher           dispatch.Pusher
}
