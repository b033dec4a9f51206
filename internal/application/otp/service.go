package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/souqly/souqly-api/internal/domain"
	"github.com/souqly/souqly-api/internal/infrastructure/sendgrid"
)

// CodeTTL is how long an issued code stays valid. Expiry is stored on the
// record for the verifier to check; it is never enforced here.
const CodeTTL = 10 * time.Minute

// VerificationStore persists verification codes, overwriting per email.
type VerificationStore interface {
	Put(ctx context.Context, v *domain.VerificationCode) error
}

type Service interface {
	IssueCode(ctx context.Context, email string) error
}

type service struct {
	codes  VerificationStore
	mailer sendgrid.Mailer
}

func NewService(codes VerificationStore, mailer sendgrid.Mailer) Service {
	return &service{codes: codes, mailer: mailer}
}

// IssueCode generates a fresh 6-digit code for the address, overwrites any
// prior live code, and emails it. The email address is the record key, so two
// successive calls leave exactly one live code.
func (s *service) IssueCode(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("email is required: %w", domain.ErrBadRequest)
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	v := &domain.VerificationCode{
		Email:     email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(CodeTTL).Unix(),
	}
	if err := s.codes.Put(ctx, v); err != nil {
		return fmt.Errorf("store verification code: %w", err)
	}

	html := fmt.Sprintf("<p>Your code is <strong>%s</strong>. It will expire in 10 minutes.</p>", code)
	if err := s.mailer.SendEmail(email, "Your Verification Code", html); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	return nil
}

// generateCode returns a uniformly random 6-digit code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
