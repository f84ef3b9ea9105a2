package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Dispatcher delivers a composed contact message to the site owner.
// A real transactional-email provider plugs in here.
type Dispatcher interface {
	Dispatch(ctx context.Context, data ContactEmailData) error
	Name() string
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
}

// Envelope is a fully rendered notification ready for a transport
type Envelope struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Composer renders contact messages into envelopes addressed to the owner
type Composer struct {
	ownerName string
	fromEmail string
	toEmail   string
	tmpl      *template.Template
}

func NewComposer(ownerName, fromEmail, toEmail string) *Composer {
	return &Composer{
		ownerName: ownerName,
		fromEmail: fromEmail,
		toEmail:   toEmail,
		tmpl:      template.Must(template.New("contact").Parse(contactEmailTemplate)),
	}
}

// contactEmailTemplate is the HTML template for contact form emails
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(90deg, #ef4444, #fb923c); color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #ef4444; margin-top: 10px; white-space: pre-wrap; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New message from your portfolio</h1>
        </div>
        <div class="content">
            <p><span class="label">From:</span> {{.Data.SenderName}} ({{.Data.SenderEmail}})</p>
            <p><span class="label">Subject:</span> {{.Data.Subject}}</p>
            <div class="message-box">{{.Data.Message}}</div>
        </div>
        <div class="footer">
            <p>Sent from the {{.Owner}} portfolio contact form.</p>
            <p>To reply, send an email to: {{.Data.SenderEmail}}</p>
        </div>
    </div>
</body>
</html>`

// headerSafe keeps user text from injecting extra mail headers
var headerSafe = strings.NewReplacer("\r", " ", "\n", " ")

// Compose renders data into an envelope; user input is HTML-escaped by the template
func (c *Composer) Compose(data ContactEmailData) (Envelope, error) {
	var body bytes.Buffer
	err := c.tmpl.Execute(&body, struct {
		Owner string
		Data  ContactEmailData
	}{Owner: c.ownerName, Data: data})
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to execute email template: %w", err)
	}

	return Envelope{
		From:    c.fromEmail,
		To:      c.toEmail,
		ReplyTo: data.SenderEmail,
		Subject: fmt.Sprintf("Portfolio Contact: %s", headerSafe.Replace(data.Subject)),
		HTML:    body.String(),
	}, nil
}

// SimulatedDispatcher stands in for a mail provider: it composes the
// envelope and waits a fixed delay to emulate network latency.
type SimulatedDispatcher struct {
	composer *Composer
	delay    time.Duration
	// Sent receives every composed envelope when non-nil
	Sent func(Envelope)
}

func NewSimulatedDispatcher(composer *Composer, delay time.Duration) *SimulatedDispatcher {
	return &SimulatedDispatcher{
		composer: composer,
		delay:    delay,
	}
}

func (d *SimulatedDispatcher) Name() string {
	return "simulated"
}

func (d *SimulatedDispatcher) Dispatch(ctx context.Context, data ContactEmailData) error {
	envelope, err := d.composer.Compose(data)
	if err != nil {
		return err
	}

	if d.delay > 0 {
		timer := time.NewTimer(d.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return fmt.Errorf("simulated dispatch interrupted: %w", ctx.Err())
		}
	}

	if d.Sent != nil {
		d.Sent(envelope)
	}
	return nil
}
