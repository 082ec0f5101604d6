package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"go-edc-backend/config"
	"go-edc-backend/internal/domain"
	"go-edc-backend/pkg/logger"
)

const defaultBaseURL = "https://api.resend.com"

// A single delivery attempt gets a bounded window so a slow provider cannot
// hang the submitting request indefinitely. No retries: a failed send is
// surfaced to the user, who can try again or email directly.
const sendTimeout = 10 * time.Second

// Service sends contact form notifications through the Resend HTTP API
type Service struct {
	apiKey  string
	from    string
	to      string
	baseURL string
	client  *http.Client
}

// NewService creates a mailer from the Resend configuration
func NewService(cfg *config.Config) *Service {
	return &Service{
		apiKey:  cfg.ResendAPIKey,
		from:    cfg.ContactEmailFrom,
		to:      cfg.ContactEmailTo,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: sendTimeout},
	}
}

// notificationTemplate is the HTML body of the internal notification email.
// html/template escapes every interpolated field, so user input cannot
// inject markup into the rendered message.
const notificationTemplate = `<h2>New Contact Form Submission</h2>
<table style="border-collapse: collapse; width: 100%; max-width: 600px;">
  <tr>
    <td style="padding: 8px; font-weight: bold; border-bottom: 1px solid #eee;">Name</td>
    <td style="padding: 8px; border-bottom: 1px solid #eee;">{{.Name}}</td>
  </tr>
  <tr>
    <td style="padding: 8px; font-weight: bold; border-bottom: 1px solid #eee;">Email</td>
    <td style="padding: 8px; border-bottom: 1px solid #eee;">{{.Email}}</td>
  </tr>
{{- if .Phone}}
  <tr>
    <td style="padding: 8px; font-weight: bold; border-bottom: 1px solid #eee;">Phone</td>
    <td style="padding: 8px; border-bottom: 1px solid #eee;">{{.Phone}}</td>
  </tr>
{{- end}}
{{- if .Organization}}
  <tr>
    <td style="padding: 8px; font-weight: bold; border-bottom: 1px solid #eee;">Organization</td>
    <td style="padding: 8px; border-bottom: 1px solid #eee;">{{.Organization}}</td>
  </tr>
{{- end}}
  <tr>
    <td style="padding: 8px; font-weight: bold; border-bottom: 1px solid #eee;">Interest</td>
    <td style="padding: 8px; border-bottom: 1px solid #eee;">{{.InterestLabel}}</td>
  </tr>
  <tr>
    <td style="padding: 8px; font-weight: bold;" colspan="2">Message</td>
  </tr>
  <tr>
    <td style="padding: 8px;" colspan="2">{{.Message}}</td>
  </tr>
</table>`

var notificationTmpl = template.Must(template.New("contact").Parse(notificationTemplate))

type notificationData struct {
	Name          string
	Email         string
	Phone         string
	Organization  string
	InterestLabel string
	// Message is escaped by hand before newline conversion, see SendContactEmail
	Message template.HTML
}

// resendRequest is the Resend /emails payload
type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// IsConfigured checks if a Resend API key is present
func (s *Service) IsConfigured() bool {
	return s.apiKey != ""
}

// SendContactEmail delivers one notification for a validated, non-spam
// submission. Without an API key it logs and reports success, so local
// environments work with email unconfigured. Failures come back as a generic
// result; provider detail goes to the logs only.
func (s *Service) SendContactEmail(ctx context.Context, req *domain.ContactRequest) domain.EmailResult {
	if !s.IsConfigured() {
		logger.Log.Warn("RESEND_API_KEY not configured - contact email not sent",
			"name", req.Name,
			"interest", string(req.Interest),
		)
		return domain.EmailResult{Success: true}
	}

	label := req.Interest.Label()

	// Escape first, then turn newlines into <br> so the template does not
	// re-escape the line breaks.
	message := strings.ReplaceAll(template.HTMLEscapeString(req.Message), "\n", "<br>")

	var body bytes.Buffer
	err := notificationTmpl.Execute(&body, notificationData{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Organization:  req.Organization,
		InterestLabel: label,
		Message:       template.HTML(message),
	})
	if err != nil {
		logger.Log.Error("Failed to render contact email", "error", err.Error())
		return domain.EmailResult{Success: false, Error: "Failed to send email"}
	}

	payload, err := json.Marshal(resendRequest{
		From:    s.from,
		To:      []string{s.to},
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("[EDC Contact] %s — %s", label, req.Name),
		HTML:    body.String(),
	})
	if err != nil {
		logger.Log.Error("Failed to encode contact email payload", "error", err.Error())
		return domain.EmailResult{Success: false, Error: "Failed to send email"}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		logger.Log.Error("Failed to build contact email request", "error", err.Error())
		return domain.EmailResult{Success: false, Error: "Failed to send email"}
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		logger.Log.Error("Failed to send contact email", "error", err.Error())
		return domain.EmailResult{Success: false, Error: "Failed to send email"}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Log.Error("Resend API error",
			"status", resp.StatusCode,
			"body", string(errBody),
		)
		return domain.EmailResult{Success: false, Error: "Failed to send email"}
	}

	logger.Log.Info("Contact email sent successfully", "interest", string(req.Interest))
	return domain.EmailResult{Success: true}
}
