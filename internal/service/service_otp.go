package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/Reznov00/wallet-keeper/internal/adapter"
	"github.com/Reznov00/wallet-keeper/internal/config"
	"github.com/Reznov00/wallet-keeper/internal/logger"
	"github.com/Reznov00/wallet-keeper/internal/metrics"
	"github.com/Reznov00/wallet-keeper/internal/store"
	"github.com/Reznov00/wallet-keeper/internal/validators"
	"github.com/Reznov00/wallet-keeper/models"
)

const (
	otpMin = 100000
	otpMax = 999999

	otpSubject      = "Verify User"
	otpBodyTemplate = "Hello, %s! Your OTP is %d"
)

type otpService struct {
	userRepository store.UserRepository
	mailSender     adapter.MailSender

	limiters  *limiterRegistry
	validator validators.Validator
	metrics   *metrics.Registry

	generate func() (int, error)
	now      func() time.Time

	logger *logger.Logger
}

// NewOTPService constructs an [OTPService] delivering codes through
// mailSender and throttled per address according to cfg.
func NewOTPService(userRepository store.UserRepository, mailSender adapter.MailSender, cfg config.OTP, registry *metrics.Registry, logger *logger.Logger) OTPService {
	return &otpService{
		userRepository: userRepository,
		mailSender:     mailSender,
		limiters:       newLimiterRegistry(cfg.IssueInterval, cfg.IssueBurst),
		validator:      validators.NewUserValidator(),
		metrics:        registry,
		generate:       generateOTP,
		now:            time.Now,
		logger:         logger,
	}
}

// Issue mails a fresh code to an unregistered address and returns it.
//
// Returns:
//   - ErrInvalidDataProvided if name or email is missing or malformed.
//   - ErrTooManyOTPRequests if the address exceeded its issuance rate.
//   - ErrUserAlreadyExists if the address belongs to a user. No mail is sent.
//   - ErrMailDelivery if the mail could not be sent.
func (s *otpService) Issue(ctx context.Context, request models.OTPRequest) (models.OTP, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.OTP{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	email := validators.NormalizeEmail(request.Email)

	if !s.limiters.Allow(email, s.now()) {
		log.Warn().Str("func", "*otpService.Issue").Msg("otp issuance throttled")
		s.metrics.OTPIssued.WithLabelValues(metrics.ResultThrottled).Inc()
		return models.OTP{}, ErrTooManyOTPRequests
	}

	_, err := s.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		s.metrics.OTPIssued.WithLabelValues(metrics.ResultDuplicate).Inc()
		return models.OTP{}, ErrUserAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "*otpService.Issue").Msg("user search by email failed")
		return models.OTP{}, fmt.Errorf("user search by email failed: %w", err)
	}

	code, err := s.generate()
	if err != nil {
		return models.OTP{}, fmt.Errorf("otp generation failed: %w", err)
	}

	err = s.mailSender.Send(ctx, models.MailMessage{
		To:      email,
		Subject: otpSubject,
		Body:    fmt.Sprintf(otpBodyTemplate, request.Name, code),
	})
	if err != nil {
		log.Err(err).Str("func", "*otpService.Issue").Msg("otp mail delivery failed")
		s.metrics.OTPIssued.WithLabelValues(metrics.ResultFailure).Inc()
		return models.OTP{}, fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}

	s.metrics.OTPIssued.WithLabelValues(metrics.ResultSuccess).Inc()
	return models.OTP{Email: email, Code: code}, nil
}

// generateOTP draws a code uniformly from [otpMin, otpMax].
func generateOTP() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + otpMin, nil
}
