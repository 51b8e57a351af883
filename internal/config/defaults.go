package config

import "time"

const (
	defaultHTTPAddress      = "localhost:8080"
	defaultRequestTimeout   = 30 * time.Second
	defaultTokenIssuer      = "wallet-keeper"
	defaultTokenDuration    = 24 * time.Hour
	defaultPasswordHashCost = 10
	defaultMailPort         = 587
	defaultChainID          = 1
	defaultGasLimit         = 21000
	defaultGasPriceWei      = "1000000000"
	defaultOTPInterval      = time.Minute
	defaultOTPBurst         = 3
	defaultLogLevel         = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordHashCost,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Mail: Mail{
			Port: defaultMailPort,
		},
		Chain: Chain{
			ID:          defaultChainID,
			GasLimit:    defaultGasLimit,
			GasPriceWei: defaultGasPriceWei,
		},
		OTP: OTP{
			IssueInterval: defaultOTPInterval,
			IssueBurst:    defaultOTPBurst,
		},
		LogLevel: defaultLogLevel,
	}
}
