package model

import "github.com/vaultpass/passgen-go/internal/crypto"

// GenerateRequest represents a password generation request.
// Pointer fields allow distinguishing between missing (nil -> default) and explicit values.
type GenerateRequest struct {
	Length           int    `json:"length"`
	Count            int    `json:"count"`
	Lowercase        *bool  `json:"lowercase"`
	Uppercase        *bool  `json:"uppercase"`
	Digits           *bool  `json:"digits"`
	Special          *bool  `json:"special"`
	ExcludeAmbiguous bool   `json:"exclude_ambiguous"`
	CustomChars      string `json:"custom_chars"`
	MinLowercase     *int   `json:"min_lowercase"`
	MinUppercase     *int   `json:"min_uppercase"`
	MinDigits        *int   `json:"min_digits"`
	MinSpecial       *int   `json:"min_special"`
	ShowStrength     bool   `json:"show_strength"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords []string                `json:"passwords"`
	Count     int                     `json:"count"`
	Length    int                     `json:"length"`
	Strength  []crypto.StrengthReport `json:"strength,omitempty"`
}

// AnalyzeRequest represents a password strength check request.
type AnalyzeRequest struct {
	Password string `json:"password"`
}
