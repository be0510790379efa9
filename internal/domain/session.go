package domain

import (
	"fmt"
	"strings"
)

type SessionID string

// Session describes one piece of offered meditation content.
type Session struct {
	ID       SessionID
	Title    string
	Category string
	Tier     Tier
	// Duration is expressed in whole minutes.
	Duration    int
	IsAvailable bool
	// AudioFilePath is a relative handle resolved by whoever plays the session.
	AudioFilePath string
}

func (s Session) Validate() error {
	if strings.TrimSpace(string(s.ID)) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidSession)
	}
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("%w: session %s: title is required", ErrInvalidSession, s.ID)
	}
	if !s.Tier.Valid() {
		return fmt.Errorf("%w: session %s: %w: %q", ErrInvalidSession, s.ID, ErrInvalidTier, s.Tier)
	}
	if s.Duration <= 0 {
		return fmt.Errorf("%w: session %s: duration must be positive, got %d", ErrInvalidSession, s.ID, s.Duration)
	}
	if s.IsAvailable && strings.TrimSpace(s.AudioFilePath) == "" {
		return fmt.Errorf("%w: session %s: audio file path is required when available", ErrInvalidSession, s.ID)
	}

	return nil
}

func (s Session) DurationLabel() string {
	return fmt.Sprintf("%d min", s.Duration)
}

func ValidateCatalog(sessions []Session) error {
	seen := make(map[SessionID]struct{}, len(sessions))
	for _, session := range sessions {
		if err := session.Validate(); err != nil {
			return err
		}
		if _, ok := seen[session.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateSessionID, session.ID)
		}
		seen[session.ID] = struct{}{}
	}

	return nil
}
