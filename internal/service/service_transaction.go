package service

import (
	"context"
	"fmt"

	"github.com/Reznov00/wallet-keeper/internal/crypto"
	"github.com/Reznov00/wallet-keeper/internal/logger"
	"github.com/Reznov00/wallet-keeper/internal/metrics"
	"github.com/Reznov00/wallet-keeper/internal/validators"
	"github.com/Reznov00/wallet-keeper/models"
)

type transactionService struct {
	signer    crypto.TransactionSigner
	validator validators.Validator
	metrics   *metrics.Registry

	logger *logger.Logger
}

func NewTransactionService(signer crypto.TransactionSigner, registry *metrics.Registry, logger *logger.Logger) TransactionService {
	return &transactionService{
		signer:    signer,
		validator: validators.NewUserValidator(),
		metrics:   registry,
		logger:    logger,
	}
}

// SendTokens signs the described transfer. The result is not broadcast and
// the descriptor is not stored.
func (s *transactionService) SendTokens(ctx context.Context, descriptor models.TransactionDescriptor) (models.SignedTransaction, error) {
	if err := s.validator.Validate(ctx, descriptor); err != nil {
		return models.SignedTransaction{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	signed, err := s.signer.Sign(ctx, descriptor)
	if err != nil {
		s.metrics.TransactionsSigned.WithLabelValues(metrics.ResultFailure).Inc()
		logger.FromContext(ctx).Err(err).Str("func", "*transactionService.SendTokens").Msg("signing failed")
		return models.SignedTransaction{}, fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}

	s.metrics.TransactionsSigned.WithLabelValues(metrics.ResultSuccess).Inc()
	logger.FromContext(ctx).Info().
		Str("from", signed.From).
		Str("to", signed.To).
		Str("hash", signed.TransactionHash).
		Msg("transaction signed")

	return signed, nil
}
