package sendgrid

import (
	"encoding/json"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/souqly/souqly-api/internal/config"
)

// Mailer sends transactional HTML email.
type Mailer interface {
	SendEmail(to, subject, htmlBody string) error
}

type mailer struct {
	apiKey string
	from   string
}

func NewMailer(cfg *config.Config) Mailer {
	return &mailer{apiKey: cfg.SendGridAPIKey, from: cfg.EmailFrom}
}

type address struct {
	Email string `json:"email"`
}

type personalization struct {
	To []address `json:"to"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailSendBody struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

func (m *mailer) SendEmail(to, subject, htmlBody string) error {
	body, err := json.Marshal(mailSendBody{
		Personalizations: []personalization{{To: []address{{Email: to}}}},
		From:             address{Email: m.from},
		Subject:          subject,
		Content:          []content{{Type: "text/html", Value: htmlBody}},
	})
	if err != nil {
		return fmt.Errorf("marshal mail body: %w", err)
	}

	request := sendgrid.GetRequest(m.apiKey, "/v3/mail/send", "https://api.sendgrid.com")
	request.Method = "POST"
	request.Body = body

	response, err := sendgrid.API(request)
	if err != nil {
		return fmt.Errorf("sendgrid api error: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected mail: status %d", response.StatusCode)
	}
	return nil
}
