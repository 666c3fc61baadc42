package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"

	"github.com/cinesine/cinesine-backend/internal/config"
)

// ContactMessage carries the submitted inquiry fields into the notification
// body.
type ContactMessage struct {
	Name          string
	Email         string
	ContactNumber string
	WeddingDates  string
	Venue         string
	EventDetails  string
	Referral      []string
}

type Notifier interface {
	// Enabled reports whether notification credentials are configured.
	// When false, Send is never attempted.
	Enabled() bool
	Send(msg ContactMessage) error
}

const contactTemplate = `<h3>New Inquiry from CineSine Contact Form</h3>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Contact Number:</strong> {{.ContactNumber}}</p>
<p><strong>Wedding Dates:</strong> {{.WeddingDates}}</p>
<p><strong>Venue:</strong> {{.Venue}}</p>
<p><strong>Referral Source:</strong> {{.Referral}}</p>
<br/>
<p><strong>Event Details:</strong></p>
<p>{{.EventDetails}}</p>`

type ResendNotifier struct {
	client    *resend.Client
	from      string
	recipient string
	tmpl      *template.Template
	log       *zap.SugaredLogger
}

func NewResendNotifier(cfg config.EmailConfig, log *zap.SugaredLogger) *ResendNotifier {
	n := &ResendNotifier{
		from:      cfg.FromAddress,
		recipient: cfg.Recipient,
		tmpl:      template.Must(template.New("contact").Parse(contactTemplate)),
		log:       log,
	}
	if cfg.ResendAPIKey != "" {
		n.client = resend.NewClient(cfg.ResendAPIKey)
	}
	return n
}

func (n *ResendNotifier) Enabled() bool {
	return n.client != nil
}

func (n *ResendNotifier) Send(msg ContactMessage) error {
	if n.client == nil {
		return fmt.Errorf("email notifier is not configured")
	}

	var body bytes.Buffer
	data := map[string]string{
		"Name":          msg.Name,
		"Email":         msg.Email,
		"ContactNumber": msg.ContactNumber,
		"WeddingDates":  orFallback(msg.WeddingDates, "Not specified"),
		"Venue":         orFallback(msg.Venue, "Not specified"),
		"Referral":      orFallback(strings.Join(msg.Referral, ", "), "None"),
		"EventDetails":  orFallback(msg.EventDetails, "No details provided"),
	}
	if err := n.tmpl.Execute(&body, data); err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.recipient},
		Subject: "New Contact Form Submission: " + msg.Name,
		Html:    body.String(),
	}

	resp, err := n.client.Emails.Send(params)
	if err != nil {
		return err
	}

	n.log.Infow("contact notification sent", "id", resp.Id, "recipient", n.recipient)
	return nil
}

func orFallback(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
