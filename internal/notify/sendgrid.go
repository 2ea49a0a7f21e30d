package notify

import (
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const failureSubject = "An exception occurred"

// SendGridNotifier emails the operations contact through SendGrid.
type SendGridNotifier struct {
	client *sendgrid.Client
	from   string
	to     string
}

func NewSendGridNotifier(apiKey, from, to string) *SendGridNotifier {
	return &SendGridNotifier{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (n *SendGridNotifier) NotifyFailure(errText string) {
	from := mail.NewEmail("uniworld", n.from)
	to := mail.NewEmail("", n.to)
	message := mail.NewSingleEmail(from, failureSubject, to, errText, errText)

	resp, err := n.client.Send(message)
	if err != nil {
		log.Printf("failure notification not sent: %v", err)
		return
	}
	if resp.StatusCode >= 400 {
		log.Printf("failure notification rejected: status %d", resp.StatusCode)
	}
}
