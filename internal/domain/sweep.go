package domain

import "encoding/json"

// NoOTPsMessage is reported when the collection is empty.
const NoOTPsMessage = "No OTPs to clean up"

// SweepResult is the outcome of one expiry sweep. It serialises either as
// {"message": ...} when there was nothing to scan, or {"success": true, "deletedCount": n}.
type SweepResult struct {
	Message      string
	Success      bool
	DeletedCount int
}

func (r SweepResult) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return json.Marshal(struct {
			Message string `json:"message"`
		}{r.Message})
	}
	return json.Marshal(struct {
		Success      bool `json:"success"`
		DeletedCount int  `json:"deletedCount"`
	}{true, r.DeletedCount})
}
