package adapter

import (
	"context"
	"fmt"

	"github.com/Reznov00/wallet-keeper/internal/config"
	"github.com/Reznov00/wallet-keeper/internal/logger"
	"github.com/Reznov00/wallet-keeper/models"
	"github.com/wneessen/go-mail"
)

// mailDialer is the part of *mail.Client used by the sender.
type mailDialer interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type smtpMailSender struct {
	client mailDialer
	sender string

	logger *logger.Logger
}

// NewSMTPMailSender constructs an SMTP implementation of [MailSender].
// The configured sender doubles as the SMTP user name; PLAIN authentication
// is enabled only when a password is set.
func NewSMTPMailSender(cfg config.Mail, logger *logger.Logger) (MailSender, error) {
	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Sender),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating SMTP client: %w", err)
	}

	return &smtpMailSender{client: client, sender: cfg.Sender, logger: logger}, nil
}

func (s *smtpMailSender) Send(ctx context.Context, message models.MailMessage) error {
	msg, err := s.compose(message)
	if err != nil {
		return err
	}

	if err = s.client.DialAndSendWithContext(ctx, msg); err != nil {
		s.logger.Err(err).Str("func", "smtpMailSender.Send").Msg("error sending mail")
		return fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}

	return nil
}

func (s *smtpMailSender) compose(message models.MailMessage) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.sender); err != nil {
		return nil, fmt.Errorf("%w: sender: %w", ErrInvalidMessage, err)
	}
	if err := msg.To(message.To); err != nil {
		return nil, fmt.Errorf("%w: recipient: %w", ErrInvalidMessage, err)
	}
	msg.Subject(message.Subject)
	msg.SetBodyString(mail.TypeTextPlain, message.Body)

	return msg, nil
}
