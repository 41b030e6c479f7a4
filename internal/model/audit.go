package model

import "time"

// Audit sources.
const (
	SourceAPI = "api"
	SourceCLI = "cli"
)

// GenerationEvent records the shape of a generation request. It never holds
// generated passwords or custom character values.
type GenerationEvent struct {
	ID               string    `json:"id"`
	Source           string    `json:"source"`
	Length           int       `json:"length"`
	Count            int       `json:"count"`
	Classes          string    `json:"classes"`
	ExcludeAmbiguous bool      `json:"exclude_ambiguous"`
	CustomCharsCount int       `json:"custom_chars_count"`
	CreatedAt        time.Time `json:"created_at"`
}
