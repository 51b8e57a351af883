package models

import "encoding/json"

// TransactionDescriptor is the minimal tuple needed to sign a value transfer.
// It lives only for the duration of one sign operation and is never stored.
type TransactionDescriptor struct {
	// From is the sender's 0x address.
	From string `json:"snd_address"`

	// To is the recipient's 0x address.
	To string `json:"rcv_address"`

	// Value is the amount to transfer in wei, as a base-10 integer.
	// Both JSON numbers and numeric strings are accepted.
	Value json.Number `json:"value"`

	// Key is the sender's 0x-hex private key.
	Key string `json:"snd_key"`

	// Nonce is the sender account nonce; zero when omitted.
	Nonce uint64 `json:"nonce,omitempty"`
}

// SignedTransaction is the result of signing a [TransactionDescriptor].
// It is ready for broadcast but has not been broadcast.
type SignedTransaction struct {
	From            string `json:"snd_address"`
	To              string `json:"rcv_address"`
	Value           string `json:"value"`
	Nonce           uint64 `json:"nonce"`
	Gas             uint64 `json:"gas"`
	GasPrice        string `json:"gasPrice"`
	ChainID         string `json:"chainId"`
	RawTransaction  string `json:"rawTransaction"`
	TransactionHash string `json:"transactionHash"`
}
