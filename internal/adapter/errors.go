package adapter

import "errors"

var (
	ErrMailDelivery   = errors.New("mail delivery failed")
	ErrInvalidMessage = errors.New("invalid mail message")
)
