// Package crypto holds the server-side cryptography of the service:
// password hashing, custodial wallet provisioning, and transaction signing.
//
// None of the implementations keep mutable state after construction, so they
// are safe for concurrent use by many requests.
package crypto

import (
	"context"

	"github.com/Reznov00/wallet-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns passwords into self-describing salted digests and
// checks passwords against them.
type PasswordHasher interface {
	// Hash returns a digest of password that embeds its salt and cost.
	Hash(password string) (string, error)

	// Verify reports whether password matches digest.
	// A mismatch is (false, nil); a non-nil error means the check itself
	// failed and says nothing about the password.
	Verify(password, digest string) (bool, error)
}

// WalletProvisioner creates fresh custodial keypairs.
type WalletProvisioner interface {
	// Create returns a new random keypair. It takes no input so that the
	// resulting key cannot be chosen or predicted by a user.
	Create() (models.Wallet, error)
}

// TransactionSigner produces signed value-transfer payloads ready for
// broadcast. It never broadcasts them.
type TransactionSigner interface {
	Sign(ctx context.Context, descriptor models.TransactionDescriptor) (models.SignedTransaction, error)
}
