package testmodels

import "github.com/go-openapi/strfmt"

// MatchRecord is a sample document model used by the integration tests.
type MatchRecord struct {

	// Unique identifier of the match.
	// Required: true
	ID *string `json:"Id"`

	// Identifier of the home player.
	// Required: true
	HomePlayer *string `json:"HomePlayer"`

	// Identifier of the away player.
	// Required: true
	AwayPlayer *string `json:"AwayPlayer"`

	// Final score, e.g. "3:1".
	Score string `json:"Score,omitempty"`

	// Timestamp when the match was played.
	// Format: date-time
	PlayedAt *strfmt.DateTime `json:"PlayedAt"`
}
