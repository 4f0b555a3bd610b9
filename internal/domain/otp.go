package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// OTPCollection is the fixed collection path holding OTP records.
const OTPCollection = "otps"

// OTPLifetime is how long a record stays valid after CreatedAt.
const OTPLifetime = 5 * time.Minute

// Millis is a stored createdAt value in milliseconds since epoch.
// Valid is false when the value is absent or not numeric.
type Millis struct {
	Value int64
	Valid bool
}

// MillisOf wraps a known timestamp.
func MillisOf(ms int64) Millis { return Millis{Value: ms, Valid: true} }

// ParseMillis coerces a stored timestamp. Numeric strings are accepted and
// fractional values round down; anything else is invalid.
func ParseMillis(s string) Millis {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Millis{}
	}
	return MillisOf(int64(math.Floor(f)))
}

// UnmarshalJSON accepts a JSON number or a numeric string. Other values
// decode as invalid rather than failing the whole record.
func (m *Millis) UnmarshalJSON(b []byte) error {
	*m = Millis{}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*m = ParseMillis(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*m = ParseMillis(n.String())
	}
	return nil
}

// MarshalJSON writes a number, or null when invalid.
func (m Millis) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, m.Value, 10), nil
}

// OTPRecord is a one-time password written by an external issuer. Only the
// fields the sweeper reads are decoded.
type OTPRecord struct {
	Key       string `json:"-"`
	CreatedAt Millis `json:"createdAt"`
}

// ExpiredBefore reports whether the record was created strictly before cutoff (ms).
// A record without a usable createdAt never expires.
func (r OTPRecord) ExpiredBefore(cutoff int64) bool {
	return r.CreatedAt.Valid && r.CreatedAt.Value < cutoff
}

// OTPSnapshot is a point-in-time read of the whole collection, keyed by record key.
type OTPSnapshot map[string]OTPRecord
