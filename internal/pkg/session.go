package pkg

import "github.com/google/uuid"

// GenerateNewSessionID - random identifier for a browser session.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// IsValidSessionID - reports whether id looks like one issued by GenerateNewSessionID.
func IsValidSessionID(id string) bool {
	return uuid.Validate(id) == nil
}
