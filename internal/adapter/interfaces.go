// Package adapter provides abstractions for the outbound collaborators of the
// wallet-keeper service.
//
// The primary abstraction is [MailSender], which decouples the OTP service
// from the mail transport. The package ships an SMTP implementation
// ([NewSMTPMailSender]) built on github.com/wneessen/go-mail.
//
// Error values defined in errors.go let callers use [errors.Is] regardless of
// the transport failure that occurred (e.g. [ErrMailDelivery] for any SMTP
// dial, auth or send failure).
package adapter

import (
	"context"

	"github.com/Reznov00/wallet-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mail_sender_mock.go -package=mock

// MailSender delivers plain-text messages to a single recipient.
// Implementations must honour ctx cancellation and must not retry on their own.
type MailSender interface {
	// Send delivers message. It returns an error wrapping [ErrMailDelivery]
	// if the message could not be handed over to the mail server, or
	// [ErrInvalidMessage] if it cannot be composed (e.g. a malformed address).
	Send(ctx context.Context, message models.MailMessage) error
}
