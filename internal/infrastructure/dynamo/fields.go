package dynamo

// DynamoDB attribute names for the OTP table.
const (
	fieldOTPID     = "otp_id"
	fieldCreatedAt = "createdAt"
	fieldExpiresAt = "expiresAt" // epoch seconds, optional; TTL attribute
)
