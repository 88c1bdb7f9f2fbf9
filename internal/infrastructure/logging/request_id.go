package logging

import "github.com/google/uuid"

// GenerateRequestID creates a new unique request ID.
func GenerateRequestID() string {
	return "req_" + uuid.NewString()
}
