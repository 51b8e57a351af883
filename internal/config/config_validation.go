package config

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// minTokenSignKeyLen is the minimal HMAC key length in bytes (256 bits).
const minTokenSignKeyLen = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// service invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.TokenSignKey) < minTokenSignKeyLen {
		return fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, minTokenSignKeyLen)
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and positive duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.DefaultCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be within [%d, %d]", ErrInvalidAppConfigs, bcrypt.DefaultCost, bcrypt.MaxCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Mail.Host == "" || cfg.Mail.Sender == "" || cfg.Mail.Port <= 0 {
		return ErrInvalidMailConfigs
	}

	if cfg.Chain.ID <= 0 || cfg.Chain.GasLimit == 0 {
		return ErrInvalidChainConfigs
	}
	if gasPrice, ok := new(big.Int).SetString(cfg.Chain.GasPriceWei, 10); !ok || gasPrice.Sign() < 0 {
		return fmt.Errorf("%w: gas price must be a non-negative integer", ErrInvalidChainConfigs)
	}

	if cfg.OTP.IssueInterval <= 0 || cfg.OTP.IssueBurst <= 0 {
		return ErrInvalidOTPConfigs
	}

	return nil
}
