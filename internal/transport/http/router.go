package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/souqly/souqly-api/internal/application/notification"
	"github.com/souqly/souqly-api/internal/application/otp"
	"github.com/souqly/souqly-api/internal/config"
	"github.com/souqly/souqly-api/internal/transport/http/handler"
	appmiddleware "github.com/souqly/souqly-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router. Paths mirror the
// original cloud function names the mobile clients already call.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — the OTP endpoint sends real email.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	otpSvc := otp.NewService(deps.VerificationRepo, deps.Mailer)
	notifSvc := notification.NewService(deps.UserRepo, deps.NotificationRepo, deps.Pusher)

	healthH := handler.NewHealthHandler()
	verificationH := handler.NewVerificationHandler(otpSvc)
	notifH := handler.NewNotificationHandler(notifSvc)

	r.Get("/health-check", healthH.Ping)
	r.With(sensitiveRL.Limit).Post("/sendVerificationCode", verificationH.SendCode)
	r.Post("/sendNotification", notifH.Send)
	r.Get("/notifications", notifH.ListUnread)
	r.Put("/notifications/{id}/read", notifH.MarkAsRead)

	return r
}
