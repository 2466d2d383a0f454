package domain

import "time"

// Cast is a post published to the social network.
type Cast struct {
	Hash        string
	ThreadHash  string
	Text        string
	PublishedAt time.Time
}

// MaxCastLength is the upstream limit on cast text.
const MaxCastLength = 320

// ValidateCastText rejects empty or oversized cast text.
func ValidateCastText(text string) error {
	if text == "" {
		return NewValidationError("text", "is required")
	}
	if len(text) > MaxCastLength {
		return NewValidationError("text", "exceeds maximum cast length")
	}

	return nil
}
