package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic codes emitted by the reconciler.
const (
	CodeAmbiguous         = "ambiguous_match"
	CodeUnresolved        = "unresolved_name"
	CodeConflict          = "id_conflict"
	CodeAutoMatched       = "auto_matched"
	CodeManualUnknownID   = "manual_unknown_id"
	CodeManualDuplicateID = "manual_duplicate_id"
	CodeEmptyName         = "empty_name"
	CodeEmptyRoster       = "empty_roster"
)

// Diagnostics holds all diagnostic information from a run.
type Diagnostics struct {
	Errors   []Diagnostic `yaml:"errors,omitempty" json:"errors,omitempty"`
	Warnings []Diagnostic `yaml:"warnings,omitempty" json:"warnings,omitempty"`
	Infos    []Diagnostic `yaml:"infos,omitempty" json:"infos,omitempty"`
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity `yaml:"severity" json:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `yaml:"code" json:"code"`
	// Message is the human-readable description.
	Message string `yaml:"message" json:"message"`
	// Subject is the display name this relates to (if any).
	Subject string `yaml:"subject,omitempty" json:"subject,omitempty"`
	// Suggestions are roster names the user may pick instead.
	Suggestions []string `yaml:"suggestions,omitempty" json:"suggestions,omitempty"`
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, subject string, suggestions ...string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, subject, suggestions))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, subject string, suggestions ...string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, subject, suggestions))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, subject string, suggestions ...string) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, subject, suggestions))
}

func newDiagnostic(sev Severity, code, message, subject string, suggestions []string) Diagnostic {
	return Diagnostic{
		Severity:    sev,
		Code:        code,
		Message:     message,
		Subject:     subject,
		Suggestions: suggestions,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// WithCode returns every diagnostic, of any severity, carrying code.
func (d *Diagnostics) WithCode(code string) []Diagnostic {
	var out []Diagnostic
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Code == code {
				out = append(out, diag)
			}
		}
	}

	return out
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (candidates: " + strings.Join(d.Suggestions, ", ") + ")"
	}

	if d.Subject != "" {
		return fmt.Sprintf("%q: %s", d.Subject, msg)
	}

	return msg
}
