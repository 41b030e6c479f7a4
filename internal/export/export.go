// Package export writes generated passwords to files in the supported formats.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Format is an output file format.
type Format string

const (
	FormatText Format = "txt"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (want txt, json or yaml)", ErrUnknownFormat, s)
}

// Document is the structured record written by the json and yaml formats.
type Document struct {
	GeneratedAt string   `json:"generated_at" yaml:"generated_at"`
	Passwords   []string `json:"passwords" yaml:"passwords"`
	Count       int      `json:"count" yaml:"count"`
}

// NewDocument builds the structured record for passwords generated at t.
func NewDocument(passwords []string, t time.Time) Document {
	if passwords == nil {
		passwords = []string{}
	}
	return Document{
		GeneratedAt: t.Format(time.RFC3339),
		Passwords:   passwords,
		Count:       len(passwords),
	}
}

// Write encodes passwords to w in the given format.
func Write(w io.Writer, format Format, passwords []string, generatedAt time.Time) error {
	switch format {
	case FormatText:
		for i, pw := range passwords {
			if _, err := fmt.Fprintf(w, "%3d: %s\n", i+1, pw); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewDocument(passwords, generatedAt))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(passwords, generatedAt)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// SaveFile writes passwords to path, readable only by the owner.
func SaveFile(path string, format Format, passwords []string, generatedAt time.Time) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	if err := Write(f, format, passwords, generatedAt); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
