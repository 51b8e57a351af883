package models

import "time"

// User is the identity record of a wallet owner.
// The password digest and the custodial signing key never leave the server
// through JSON; the only exception is the explicit [AuthProjection].
type User struct {
	// ID is the server-generated UUIDv7 identifier of the user.
	ID string `json:"id"`

	// Name is the display name given at registration.
	Name string `json:"name"`

	// Email is the unique, lower-cased login identifier.
	Email string `json:"email"`

	// Password holds the plaintext password on input and the bcrypt digest
	// once the user has been registered.
	Password string `json:"-"`

	// WalletAddress is the EIP-55 checksummed public address of the wallet.
	WalletAddress string `json:"walletAddress"`

	// PrivateKey is the 0x-prefixed hex secp256k1 key held in custody.
	PrivateKey string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Wallet is a freshly provisioned custodial keypair.
type Wallet struct {
	Address    string
	PrivateKey string
}

// UserUpdate carries the fields of a partial user update.
// Nil fields are left untouched.
type UserUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// IsEmpty reports whether the update carries no field to change.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil
}

// AuthProjection is the view of a user returned by the token check endpoint.
type AuthProjection struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Wallet     string `json:"wallet"`
	PrivateKey string `json:"privateKey"`
}

// NewAuthProjection builds the /auth view of u.
func NewAuthProjection(u User) AuthProjection {
	return AuthProjection{
		Name:       u.Name,
		Email:      u.Email,
		Wallet:     u.WalletAddress,
		PrivateKey: u.PrivateKey,
	}
}
