// Package mailer delivers plain-text notifications to the site owner.
package mailer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/harizal/portfolio/pkg/contact"
)

// Message is a single plain-text email.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
}

type Sender interface {
	Send(ctx context.Context, m Message) error
}

// LogSender only logs messages. Used when no SMTP host is configured.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender { return &LogSender{log: log} }

func (s *LogSender) Send(_ context.Context, m Message) error {
	s.log.Info("mail delivery disabled, message dropped",
		zap.String("to", m.To), zap.String("subject", m.Subject))
	return nil
}

// Notifier formats owner notifications. It implements contact.Notifier
// and auth.CodeSender.
type Notifier struct {
	sender Sender
	owner  string
}

// NewNotifier sends everything to owner.
func NewNotifier(sender Sender, owner string) *Notifier {
	return &Notifier{sender: sender, owner: owner}
}

func (n *Notifier) NotifyContact(ctx context.Context, r contact.Request) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", r.Name)
	fmt.Fprintf(&b, "Email: %s\n", r.Email)
	if r.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", r.Company)
	}
	fmt.Fprintf(&b, "Received: %s\n\n%s\n", r.CreatedAt.Format("2006-01-02 15:04 MST"), r.Message)
	return n.sender.Send(ctx, Message{
		To:      n.owner,
		ReplyTo: r.Email,
		Subject: "New CV request from " + r.Name,
		Body:    b.String(),
	})
}

func (n *Notifier) SendCode(ctx context.Context, identifier, code string) error {
	return n.sender.Send(ctx, Message{
		To:      n.owner,
		Subject: "Your one-time code for the CV admin panel",
		Body: fmt.Sprintf("One-time code for %s: %s\n\nThe code is valid for 5 minutes.\n",
			identifier, code),
	})
}
