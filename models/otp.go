package models

// OTP is a one-time code issued to confirm an e-mail address before
// registration. It is not stored server-side.
type OTP struct {
	Email string `json:"-"`
	Code  int    `json:"OTP"`
}
