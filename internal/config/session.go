package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"roster-reconciler/internal/roster"
)

// ErrInvalidSession is wrapped by every session validation problem.
var ErrInvalidSession = errors.New("invalid session")

// Session is one meeting: the names seen in its transcript, the real names
// some participants declared, assignments made by hand earlier, and the
// roster to match against.
type Session struct {
	DisplayNames []string          `yaml:"display_names"`
	Aliases      map[string]string `yaml:"aliases,omitempty"`
	Manual       map[string]string `yaml:"manual,omitempty"`
	Roster       []roster.Entry    `yaml:"roster"`
}

// LoadSession loads, parses, and validates a session file.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session file %s: %w", path, err)
	}

	s, err := ParseSession(data)
	if err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("session file %s: %w", path, err)
	}

	return s, nil
}

// ParseSession parses YAML data into a Session.
func ParseSession(data []byte) (*Session, error) {
	var s Session

	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session YAML: %w", err)
	}

	if s.Aliases == nil {
		s.Aliases = make(map[string]string)
	}
	if s.Manual == nil {
		s.Manual = make(map[string]string)
	}

	return &s, nil
}

// Validate checks the roster: every entry needs an ID, a surname or a
// firstname, and IDs must be unique.
func (s *Session) Validate() error {
	var errs []error

	seen := make(map[string]int, len(s.Roster))
	for i, e := range s.Roster {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			errs = append(errs, fmt.Errorf("%w: roster[%d] has no id", ErrInvalidSession, i))
			continue
		}

		if strings.TrimSpace(e.Surname) == "" && strings.TrimSpace(e.Firstname) == "" {
			errs = append(errs, fmt.Errorf("%w: roster[%d] (id %s) has no name", ErrInvalidSession, i, id))
		}

		if prev, dup := seen[id]; dup {
			errs = append(errs, fmt.Errorf("%w: roster[%d] repeats id %s of roster[%d]", ErrInvalidSession, i, id, prev))
			continue
		}
		seen[id] = i
	}

	return errors.Join(errs...)
}

// MarshalSession serializes a Session to YAML.
func MarshalSession(s *Session) ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteSession writes a Session to the given path.
func WriteSession(s *Session, path string) error {
	data, err := MarshalSession(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write session file %s: %w", path, err)
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
