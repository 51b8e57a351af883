package models

// MailMessage is a plain-text message addressed to a single recipient.
type MailMessage struct {
	To      string
	Subject string
	Body    string
}
