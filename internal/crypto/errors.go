package crypto

import "errors"

var (
	// ErrHashingFailed is returned when bcrypt fails for any reason other
	// than a password mismatch (e.g. a malformed stored digest).
	ErrHashingFailed = errors.New("password hashing failed")

	// ErrPasswordTooLong is returned for passwords longer than 72 bytes,
	// which bcrypt cannot hash without truncation.
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")

	// ErrKeyGeneration is returned when the system random source fails
	// while provisioning a wallet.
	ErrKeyGeneration = errors.New("wallet key generation failed")

	ErrMalformedKey      = errors.New("malformed private key")
	ErrMalformedValue    = errors.New("malformed transaction value")
	ErrMalformedAddress  = errors.New("malformed address")
	ErrSenderKeyMismatch = errors.New("sender address does not match private key")
	ErrSigningFailed     = errors.New("transaction signing failed")
)
