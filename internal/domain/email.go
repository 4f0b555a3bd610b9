package domain

import (
	"encoding/json"
	"errors"
	"strconv"
)

// OTPCode is the credential shown in the OTP email. Clients send it as a
// JSON string or number; zero and null decode as empty, which counts as missing.
type OTPCode string

func (c *OTPCode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = OTPCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("otp must be a string or number")
	}
	f, err := n.Float64()
	if err != nil {
		return err
	}
	if f == 0 {
		*c = ""
		return nil
	}
	*c = OTPCode(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// SendOTPEmailRequest is the payload of the sendOtpEmail callable.
type SendOTPEmailRequest struct {
	Email    string  `json:"email" validate:"required"`
	OTP      OTPCode `json:"otp" validate:"required"`
	Username string  `json:"username" validate:"required"`
}

// SendWelcomeEmailRequest is the payload of the sendWelcomeEmail callable.
type SendWelcomeEmailRequest struct {
	Email    string `json:"email" validate:"required"`
	Username string `json:"username" validate:"required"`
}

// SendResult is returned by both email handlers on success.
type SendResult struct {
	Success bool `json:"success"`
}
