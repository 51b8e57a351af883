package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/Reznov00/wallet-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldOldPassword = "old"
	FieldNewPassword = "new"
	FieldSender      = "snd_address"
	FieldRecipient   = "rcv_address"
	FieldValue       = "value"
	FieldKey         = "snd_key"
	FieldUpdate      = "update"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// UserValidator checks the request models of the user endpoints.
// It only checks presence and shape; address and key validity of
// transactions is left to the signer.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.OTPRequest:
		return v.validateOTP(value, fields...)
	case *models.OTPRequest:
		return v.validateOTP(*value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value, fields...)

	case models.TransactionDescriptor:
		return v.validateTransaction(value, fields...)
	case *models.TransactionDescriptor:
		return v.validateTransaction(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegister(r models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(r.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if err := validateEmail(r.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := validatePassword(r.Password, ErrEmptyPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLogin(r models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(r.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if r.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateOTP(r models.OTPRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(r.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if err := validateEmail(r.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateChangePassword(r models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOldPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldOldPassword:
			if r.Old == "" {
				return ErrEmptyOldPassword
			}
		case FieldNewPassword:
			if err := validatePassword(r.New, ErrEmptyNewPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateUserUpdate(u models.UserUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdate, FieldName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdate:
			if u.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if u.Email != nil {
				if err := validateEmail(*u.Email); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateTransaction(d models.TransactionDescriptor, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSender, FieldRecipient, FieldValue, FieldKey}
	}

	for _, f := range fields {
		switch f {
		case FieldSender:
			if strings.TrimSpace(d.From) == "" {
				return ErrEmptySender
			}
		case FieldRecipient:
			if strings.TrimSpace(d.To) == "" {
				return ErrEmptyRecipient
			}
		case FieldValue:
			if strings.TrimSpace(d.Value.String()) == "" {
				return ErrEmptyValue
			}
		case FieldKey:
			if strings.TrimSpace(d.Key) == "" {
				return ErrEmptyKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	return nil
}

func validatePassword(password string, errEmpty error) error {
	if password == "" {
		return errEmpty
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

// NormalizeEmail returns the canonical form under which an e-mail address is
// stored and looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
