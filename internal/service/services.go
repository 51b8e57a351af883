package service

import (
	"github.com/Reznov00/wallet-keeper/internal/adapter"
	"github.com/Reznov00/wallet-keeper/internal/config"
	"github.com/Reznov00/wallet-keeper/internal/crypto"
	"github.com/Reznov00/wallet-keeper/internal/logger"
	"github.com/Reznov00/wallet-keeper/internal/metrics"
	"github.com/Reznov00/wallet-keeper/internal/store"
)

// Services groups every business service handed to the transport layer.
type Services struct {
	TokenService       TokenService
	AuthService        AuthService
	OTPService         OTPService
	UserService        UserService
	TransactionService TransactionService
	AppInfoService     AppInfoService
}

// Dependencies are the collaborators shared by the services.
type Dependencies struct {
	Storages   *store.Storages
	MailSender adapter.MailSender
	Hasher     crypto.PasswordHasher
	Wallets    crypto.WalletProvisioner
	Signer     crypto.TransactionSigner
	Metrics    *metrics.Registry
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, version string, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(version, logger)
	if err != nil {
		return nil, err
	}

	tokenService := NewTokenService(cfg.App, logger)
	users := deps.Storages.UserRepository

	return &Services{
		TokenService:       tokenService,
		AuthService:        NewAuthService(users, deps.Hasher, deps.Wallets, tokenService, logger),
		OTPService:         NewOTPService(users, deps.MailSender, cfg.OTP, deps.Metrics, logger),
		UserService:        NewUserService(users, logger),
		TransactionService: NewTransactionService(deps.Signer, deps.Metrics, logger),
		AppInfoService:     appInfoService,
	}, nil
}
