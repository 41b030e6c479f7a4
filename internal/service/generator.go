package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

const (
	defaultLength = 16
	defaultCount  = 1
)

var (
	ErrLengthTooLong = fmt.Errorf("%w: password length exceeds the allowed maximum", crypto.ErrConfiguration)
	ErrCountTooLarge = fmt.Errorf("%w: password count exceeds the allowed maximum", crypto.ErrConfiguration)
)

// AuditRecorder stores generation events.
type AuditRecorder interface {
	Record(ctx context.Context, event *model.GenerationEvent) error
}

// Limits bounds the size of a single generation request. A zero field
// leaves only the generator's own ceiling in place.
type Limits struct {
	MaxLength int
	MaxCount  int
}

// Check reports whether length and count are within the limits.
func (l Limits) Check(length, count int) error {
	if l.MaxLength > 0 && length > l.MaxLength {
		return fmt.Errorf("%w (%d)", ErrLengthTooLong, l.MaxLength)
	}
	if l.MaxCount > 0 && count > l.MaxCount {
		return fmt.Errorf("%w (%d)", ErrCountTooLarge, l.MaxCount)
	}
	return nil
}

// GeneratorService handles password generation and analysis business logic.
type GeneratorService struct {
	limits Limits
	audit  AuditRecorder
}

// NewGeneratorService creates a new GeneratorService. audit may be nil, in
// which case no generation events are recorded.
func NewGeneratorService(limits Limits, audit AuditRecorder) *GeneratorService {
	return &GeneratorService{limits: limits, audit: audit}
}

// Generate produces passwords based on the given request.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := OptionsFromRequest(req)

	count := req.Count
	if count == 0 {
		count = defaultCount
	}

	if err := s.limits.Check(opts.Length, count); err != nil {
		return model.GenerateResponse{}, err
	}

	passwords, err := crypto.GenerateMany(opts, count)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	resp := model.GenerateResponse{
		Passwords: passwords,
		Count:     len(passwords),
		Length:    opts.Length,
	}
	if req.ShowStrength {
		resp.Strength = make([]crypto.StrengthReport, len(passwords))
		for i, pw := range passwords {
			resp.Strength[i] = crypto.Analyze(pw)
		}
	}

	s.Record(ctx, model.SourceAPI, opts, len(passwords))

	return resp, nil
}

// Analyze scores the password in the request.
func (s *GeneratorService) Analyze(req model.AnalyzeRequest) crypto.StrengthReport {
	return crypto.Analyze(req.Password)
}

// Record stores a generation event if auditing is enabled. Failures are
// logged and otherwise ignored.
func (s *GeneratorService) Record(ctx context.Context, source string, opts crypto.GeneratorOptions, count int) {
	if s.audit == nil {
		return
	}

	event := NewGenerationEvent(source, opts, count)
	if err := s.audit.Record(ctx, event); err != nil {
		slog.Warn("failed to record generation event", "event_id", event.ID, "error", err)
	}
}

// NewGenerationEvent describes a generation request without its output.
func NewGenerationEvent(source string, opts crypto.GeneratorOptions, count int) *model.GenerationEvent {
	var classes []string
	for _, c := range crypto.Classes() {
		if opts.Rules[c].Include {
			classes = append(classes, c.String())
		}
	}

	return &model.GenerationEvent{
		ID:               uuid.NewString(),
		Source:           source,
		Length:           opts.Length,
		Count:            count,
		Classes:          strings.Join(classes, ","),
		ExcludeAmbiguous: opts.ExcludeAmbiguous,
		CustomCharsCount: utf8.RuneCountInString(opts.CustomChars),
		CreatedAt:        time.Now().UTC(),
	}
}

// OptionsFromRequest maps an API request onto generator options, applying
// defaults for missing fields.
func OptionsFromRequest(req model.GenerateRequest) crypto.GeneratorOptions {
	opts := crypto.GeneratorOptions{
		Length:           req.Length,
		ExcludeAmbiguous: req.ExcludeAmbiguous,
		CustomChars:      req.CustomChars,
	}
	if opts.Length == 0 {
		opts.Length = defaultLength
	}

	opts.Rules[crypto.Lowercase] = classRule(req.Lowercase, req.MinLowercase)
	opts.Rules[crypto.Uppercase] = classRule(req.Uppercase, req.MinUppercase)
	opts.Rules[crypto.Digit] = classRule(req.Digits, req.MinDigits)
	opts.Rules[crypto.Special] = classRule(req.Special, req.MinSpecial)

	return opts
}

func classRule(include *bool, minimum *int) crypto.ClassRule {
	rule := crypto.ClassRule{Include: boolOrDefault(include, true)}
	if rule.Include {
		rule.Min = intOrDefault(minimum, 1)
	}
	return rule
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
